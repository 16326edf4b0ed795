package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/moneystory/moneystory/internal/model"
)

// SaveTransactions writes a batch of transactions for one user inside a
// single database transaction.
func (s *SQLiteStore) SaveTransactions(ctx context.Context, userID int64, txns []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateUserID(userID); err != nil {
		return err
	}
	if err := validateTransactions(txns); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (
			user_id, timestamp, amount, is_income,
			category, description, source, account_name
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range txns {
		t := &txns[i]
		_, err = stmt.ExecContext(ctx,
			userID,
			t.Timestamp.UTC(),
			t.Amount,
			t.IsIncome,
			nullableString(t.Category),
			nullableString(t.Description),
			nullableString(t.Source),
			nullableString(t.AccountName),
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// ListTransactions returns the most recent transactions for a user,
// newest first.
func (s *SQLiteStore) ListTransactions(ctx context.Context, userID int64, limit int) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, timestamp, amount, is_income,
		       category, description, source, account_name
		FROM transactions
		WHERE user_id = ?
		ORDER BY timestamp DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// GetTransactionsByRange returns a user's transactions in [start, end),
// oldest first.
func (s *SQLiteStore) GetTransactionsByRange(ctx context.Context, userID int64, start, end time.Time) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, timestamp, amount, is_income,
		       category, description, source, account_name
		FROM transactions
		WHERE user_id = ? AND timestamp >= ? AND timestamp < ?
		ORDER BY timestamp ASC
	`, userID, start.UTC(), end.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by range: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// GetAllTransactions returns a user's full history, oldest first.
func (s *SQLiteStore) GetAllTransactions(ctx context.Context, userID int64) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, timestamp, amount, is_income,
		       category, description, source, account_name
		FROM transactions
		WHERE user_id = ?
		ORDER BY timestamp ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

func scanTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	var out []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var category, description, source, accountName sql.NullString
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Timestamp, &t.Amount, &t.IsIncome,
			&category, &description, &source, &accountName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		t.Category = category.String
		t.Description = description.String
		t.Source = source.String
		t.AccountName = accountName.String
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return out, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
