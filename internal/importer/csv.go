// Package importer reads transaction batches from CSV files.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/moneystory/moneystory/internal/common"
	"github.com/moneystory/moneystory/internal/model"
)

var requiredColumns = []string{"timestamp", "amount", "is_income"}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// ReadCSV parses transactions from r. The header row must contain
// timestamp, amount and is_income; category, description, source and
// account_name are optional.
func ReadCSV(r io.Reader) ([]model.Transaction, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", common.ErrMissingColumn, name)
		}
	}

	var txns []model.Transaction
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}

		txn, err := parseRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		txns = append(txns, txn)
	}

	if len(txns) == 0 {
		return nil, common.ErrNoTransactions
	}
	return txns, nil
}

func parseRecord(record []string, columns map[string]int) (model.Transaction, error) {
	var txn model.Transaction

	raw := field(record, columns, "timestamp")
	ts, err := parseTimestamp(raw)
	if err != nil {
		return txn, err
	}
	txn.Timestamp = ts

	amount, err := strconv.ParseFloat(field(record, columns, "amount"), 64)
	if err != nil {
		return txn, fmt.Errorf("invalid amount %q: %w", field(record, columns, "amount"), err)
	}
	txn.Amount = amount

	isIncome, err := parseBool(field(record, columns, "is_income"))
	if err != nil {
		return txn, err
	}
	txn.IsIncome = isIncome

	txn.Category = field(record, columns, "category")
	txn.Description = field(record, columns, "description")
	txn.Source = field(record, columns, "source")
	txn.AccountName = field(record, columns, "account_name")

	if err := txn.Validate(); err != nil {
		return txn, err
	}
	return txn, nil
}

func field(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("timestamp cannot be empty")
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "1", "yes", "y":
		return true, nil
	case "false", "0", "no", "n", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid is_income value %q", raw)
}
