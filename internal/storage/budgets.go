package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/moneystory/moneystory/internal/model"
)

var defaultBudgets = []model.Budget{
	{Category: "Food", Amount: 5000},
	{Category: "Shopping", Amount: 4000},
	{Category: "Subscriptions", Amount: 1500},
	{Category: "Transport", Amount: 3000},
}

// UpsertBudget creates or updates a user's monthly limit for a category.
func (s *SQLiteStore) UpsertBudget(ctx context.Context, userID int64, category string, amount float64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateUserID(userID); err != nil {
		return err
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return fmt.Errorf("budget category cannot be empty")
	}
	if amount < 0 {
		return fmt.Errorf("monthly limit cannot be negative: %f", amount)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (user_id, category, amount)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id, category) DO UPDATE SET amount = excluded.amount
	`, userID, category, amount)
	if err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}
	return nil
}

// ListBudgets returns a user's budgets ordered by category.
func (s *SQLiteStore) ListBudgets(ctx context.Context, userID int64) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, category, amount
		FROM budgets
		WHERE user_id = ?
		ORDER BY category ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Budget
	for rows.Next() {
		var b model.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
	}
	return out, nil
}

// SeedDefaultBudgets installs the starter budgets for a new user.
func (s *SQLiteStore) SeedDefaultBudgets(ctx context.Context, userID int64) error {
	for _, b := range defaultBudgets {
		if err := s.UpsertBudget(ctx, userID, b.Category, b.Amount); err != nil {
			return err
		}
	}
	return nil
}
