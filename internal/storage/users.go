package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/moneystory/moneystory/internal/common"
	"github.com/moneystory/moneystory/internal/model"
)

// CreateUser inserts a new user and returns it with the assigned id.
func (s *SQLiteStore) CreateUser(ctx context.Context, name, email string) (*model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("user name cannot be empty")
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO users (name, email) VALUES (?, ?)`,
		name, nullableString(strings.TrimSpace(email)))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, common.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get user id: %w", err)
	}
	return &model.User{ID: id, Name: name, Email: email}, nil
}

// GetUser returns the user with the given id.
func (s *SQLiteStore) GetUser(ctx context.Context, id int64) (*model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateUserID(id); err != nil {
		return nil, err
	}

	var u model.User
	var email sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Name, &email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	u.Email = email.String
	return &u, nil
}

// FirstUser returns the lowest-id user, creating a demo user when the
// table is empty.
func (s *SQLiteStore) FirstUser(ctx context.Context) (*model.User, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var u model.User
	var email sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email FROM users ORDER BY id ASC LIMIT 1`).
		Scan(&u.ID, &u.Name, &email)
	if errors.Is(err, sql.ErrNoRows) {
		return s.seedDemoUser(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get first user: %w", err)
	}
	u.Email = email.String
	return &u, nil
}

func (s *SQLiteStore) seedDemoUser(ctx context.Context) (*model.User, error) {
	user, err := s.CreateUser(ctx, "Demo User", "demo@example.com")
	if err != nil {
		return nil, err
	}
	if err := s.SeedDefaultBudgets(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}
