package analytics

import (
	"sort"
	"time"

	"github.com/moneystory/moneystory/internal/model"
)

// MonthlySummaries rolls the transaction set up into per-month
// income/expense/net rows, sorted by period.
func MonthlySummaries(txns []model.Transaction) []PeriodSummary {
	return periodSummaries(txns, model.MonthPeriod)
}

// WeeklySummaries rolls the transaction set up into per-ISO-week rows,
// sorted by period.
func WeeklySummaries(txns []model.Transaction) []PeriodSummary {
	return periodSummaries(txns, model.WeekPeriod)
}

func periodSummaries(txns []model.Transaction, keyFn func(time.Time) string) []PeriodSummary {
	income := make(map[string]float64)
	expense := make(map[string]float64)
	seen := make(map[string]bool)

	for _, tx := range txns {
		period := keyFn(tx.Timestamp)
		seen[period] = true
		if tx.IsIncome {
			income[period] += tx.Amount
		} else {
			expense[period] += tx.Amount
		}
	}

	periods := make([]string, 0, len(seen))
	for p := range seen {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	out := make([]PeriodSummary, 0, len(periods))
	for _, p := range periods {
		out = append(out, PeriodSummary{
			Period:       p,
			TotalIncome:  round2(income[p]),
			TotalExpense: round2(expense[p]),
			Net:          round2(income[p] - expense[p]),
		})
	}
	return out
}
