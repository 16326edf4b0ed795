package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneystory/moneystory/internal/model"
)

func monthTx(year int, month time.Month, amount float64, category string) model.Transaction {
	return model.Transaction{
		Timestamp: time.Date(year, month, 10, 0, 0, 0, 0, time.UTC),
		Amount:    amount,
		Category:  category,
	}
}

func TestCategoryTrendsBaselineIsAverageAcrossPeriods(t *testing.T) {
	txns := []model.Transaction{
		monthTx(2025, time.January, 1000, "Food"),
		monthTx(2025, time.February, 3000, "Food"),
		monthTx(2025, time.March, 5000, "Food"),
	}

	rows := CategoryTrends(txns, "2025-03")
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Food", row.Category)
	assert.Equal(t, 5000.0, row.Current)
	assert.Equal(t, 2000.0, row.Baseline, "baseline is the per-month average, not the total")
	assert.Equal(t, 3000.0, row.Delta)
	require.NotNil(t, row.DeltaPct)
	assert.InDelta(t, 1.5, *row.DeltaPct, 0.001)
}

func TestCategoryTrendsCategoryMissingFromCurrent(t *testing.T) {
	txns := []model.Transaction{
		monthTx(2025, time.January, 800, "Transport"),
		monthTx(2025, time.February, 800, "Transport"),
		monthTx(2025, time.March, 500, "Food"),
	}

	rows := CategoryTrends(txns, "2025-03")
	require.Len(t, rows, 2)

	var transport *TrendRow
	for i := range rows {
		if rows[i].Category == "Transport" {
			transport = &rows[i]
		}
	}
	require.NotNil(t, transport)
	assert.Zero(t, transport.Current)
	assert.Equal(t, 800.0, transport.Baseline)
	assert.Equal(t, -800.0, transport.Delta)
	require.NotNil(t, transport.DeltaPct)
	assert.InDelta(t, -1.0, *transport.DeltaPct, 0.001)
}

func TestCategoryTrendsNewCategoryHasNilPctAndSortsLast(t *testing.T) {
	txns := []model.Transaction{
		monthTx(2025, time.January, 1000, "Food"),
		monthTx(2025, time.February, 1000, "Food"),
		monthTx(2025, time.March, 1500, "Food"),
		monthTx(2025, time.March, 4000, "Gadgets"), // never seen before
	}

	rows := CategoryTrends(txns, "2025-03")
	require.Len(t, rows, 2)

	assert.Equal(t, "Food", rows[0].Category, "movers with a real baseline sort first")
	assert.Equal(t, "Gadgets", rows[1].Category)
	assert.Nil(t, rows[1].DeltaPct, "no baseline must be nil, not zero")
	assert.Equal(t, 4000.0, rows[1].Current)
	assert.Zero(t, rows[1].Baseline)
}

func TestCategoryTrendsSortedByAbsolutePctChange(t *testing.T) {
	txns := []model.Transaction{
		monthTx(2025, time.January, 1000, "Food"),      // baseline 1000
		monthTx(2025, time.January, 1000, "Transport"), // baseline 1000
		monthTx(2025, time.March, 1100, "Food"),        // +10%
		monthTx(2025, time.March, 300, "Transport"),    // -70%
	}

	rows := CategoryTrends(txns, "2025-03")
	require.Len(t, rows, 2)
	assert.Equal(t, "Transport", rows[0].Category)
	assert.Equal(t, "Food", rows[1].Category)
}

func TestCategoryTrendsEmptyCases(t *testing.T) {
	baselineOnly := []model.Transaction{
		monthTx(2025, time.January, 1000, "Food"),
	}
	assert.Empty(t, CategoryTrends(baselineOnly, "2025-03"), "no current-period data")

	currentOnly := []model.Transaction{
		monthTx(2025, time.March, 1000, "Food"),
	}
	assert.Empty(t, CategoryTrends(currentOnly, "2025-03"), "no baseline periods")

	assert.Empty(t, CategoryTrends(nil, "2025-03"))
}

func TestCategoryTrendsIgnoresIncomeAndUncategorized(t *testing.T) {
	income := monthTx(2025, time.January, 90000, "Salary")
	income.IsIncome = true

	txns := []model.Transaction{
		income,
		monthTx(2025, time.January, 1000, "Food"),
		monthTx(2025, time.January, 200, ""),
		monthTx(2025, time.March, 1200, "Food"),
	}

	rows := CategoryTrends(txns, "2025-03")
	require.Len(t, rows, 1)
	assert.Equal(t, "Food", rows[0].Category)
}

func TestCategoryTrendsUncategorizedMonthCountsInBaseline(t *testing.T) {
	txns := []model.Transaction{
		monthTx(2025, time.January, 100, "Food"),
		monthTx(2025, time.February, 50, ""),
		monthTx(2025, time.March, 200, "Food"),
	}

	rows := CategoryTrends(txns, "2025-03")
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Food", row.Category)
	assert.Equal(t, 50.0, row.Baseline, "a month with only uncategorized spend still divides the baseline")
	assert.Equal(t, 150.0, row.Delta)
	require.NotNil(t, row.DeltaPct)
	assert.InDelta(t, 3.0, *row.DeltaPct, 0.001)
}

func TestCategoryTrendsUncategorizedOnlyCurrentMonth(t *testing.T) {
	txns := []model.Transaction{
		monthTx(2025, time.January, 100, "Food"),
		monthTx(2025, time.February, 100, "Food"),
		monthTx(2025, time.March, 50, ""),
	}

	rows := CategoryTrends(txns, "2025-03")
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Food", row.Category)
	assert.Zero(t, row.Current)
	assert.Equal(t, 100.0, row.Baseline)
	assert.Equal(t, -100.0, row.Delta)
	require.NotNil(t, row.DeltaPct)
	assert.InDelta(t, -1.0, *row.DeltaPct, 0.001)
}
