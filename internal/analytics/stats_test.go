package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/moneystory/moneystory/internal/model"
)

func tx(day int, amount float64, income bool, category, description string) model.Transaction {
	return model.Transaction{
		Timestamp:   time.Date(2025, 1, day, 12, 0, 0, 0, time.UTC),
		Amount:      amount,
		IsIncome:    income,
		Category:    category,
		Description: description,
	}
}

func txAt(ts time.Time, amount float64, income bool, category, description string) model.Transaction {
	return model.Transaction{
		Timestamp:   ts,
		Amount:      amount,
		IsIncome:    income,
		Category:    category,
		Description: description,
	}
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name string
		txns []model.Transaction
		want Stats
	}{
		{
			name: "income and expenses",
			txns: []model.Transaction{
				tx(1, 50000, true, "Salary", "salary credit"),
				tx(5, 12000, false, "Housing", "rent"),
				tx(10, 8000, false, "Food", "groceries"),
			},
			want: Stats{TotalIncome: 50000, TotalExpense: 20000, Net: 30000, SavingsRate: 0.6},
		},
		{
			name: "no income means zero savings rate",
			txns: []model.Transaction{
				tx(3, 500, false, "Food", "zomato"),
			},
			want: Stats{TotalIncome: 0, TotalExpense: 500, Net: -500, SavingsRate: 0},
		},
		{
			name: "empty input",
			txns: nil,
			want: Stats{},
		},
		{
			name: "rounding to two decimals",
			txns: []model.Transaction{
				tx(1, 100, true, "", ""),
				tx(2, 33.333, false, "", ""),
			},
			want: Stats{TotalIncome: 100, TotalExpense: 33.33, Net: 66.67, SavingsRate: 0.667},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStats(tt.txns))
		})
	}
}

func TestComputeStatsNetInvariant(t *testing.T) {
	txns := []model.Transaction{
		tx(1, 41234.56, true, "Salary", ""),
		tx(2, 999.99, false, "Food", ""),
		tx(3, 12500.25, false, "Housing", ""),
		tx(4, 1200, true, "Side Income", ""),
	}
	stats := ComputeStats(txns)
	assert.InDelta(t, stats.TotalIncome-stats.TotalExpense, stats.Net, 0.011,
		"net must equal income minus expense up to display rounding")
}
