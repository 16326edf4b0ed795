package storage

import (
	"context"
	"fmt"

	"github.com/moneystory/moneystory/internal/model"
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context must not be nil")
	}
	return ctx.Err()
}

func validateUserID(userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("user id must be positive, got %d", userID)
	}
	return nil
}

func validateTransactions(txns []model.Transaction) error {
	if len(txns) == 0 {
		return fmt.Errorf("no transactions to save")
	}
	for i := range txns {
		if err := txns[i].Validate(); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}
	return nil
}
