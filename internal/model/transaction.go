// Package model defines the domain types shared across the application.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Transaction represents a single money movement for a user. Amount is
// always non-negative; direction is carried by IsIncome.
type Transaction struct {
	Timestamp   time.Time `json:"timestamp"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	Source      string    `json:"source,omitempty"`
	AccountName string    `json:"account_name,omitempty"`
	ID          int64     `json:"id,omitempty"`
	UserID      int64     `json:"user_id,omitempty"`
	Amount      float64   `json:"amount"`
	IsIncome    bool      `json:"is_income"`
}

// Validate checks that the required fields are present and sane.
func (t *Transaction) Validate() error {
	if t.Timestamp.IsZero() {
		return fmt.Errorf("transaction timestamp is required")
	}
	if t.Amount < 0 {
		return fmt.Errorf("transaction amount must be non-negative, got %.2f", t.Amount)
	}
	return nil
}

// HasCategory reports whether the transaction carries a usable category.
// Whitespace-only categories count as missing.
func (t *Transaction) HasCategory() bool {
	return strings.TrimSpace(t.Category) != ""
}

// SearchText concatenates the lower-cased free-text fields used for
// keyword categorization.
func (t *Transaction) SearchText() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{t.Description, t.Source, t.AccountName} {
		if p != "" {
			parts = append(parts, strings.ToLower(p))
		}
	}
	return strings.Join(parts, " ")
}
