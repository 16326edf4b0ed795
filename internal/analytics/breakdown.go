package analytics

import (
	"sort"

	"github.com/moneystory/moneystory/internal/model"
)

// Uncategorized is the display bucket for expenses that still have no
// category after resolution. They are grouped, never dropped.
const Uncategorized = "None"

// CategoryBreakdown aggregates expense totals per category, sorted
// descending by amount. Ties keep first-encountered input order.
func CategoryBreakdown(txns []model.Transaction) []CategorySpend {
	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, tx := range txns {
		if tx.IsIncome {
			continue
		}
		cat := tx.Category
		if !tx.HasCategory() {
			cat = Uncategorized
		}
		if _, seen := totals[cat]; !seen {
			order = append(order, cat)
		}
		totals[cat] += tx.Amount
	}

	out := make([]CategorySpend, 0, len(order))
	for _, cat := range order {
		out = append(out, CategorySpend{Category: cat, TotalSpend: totals[cat]})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSpend > out[j].TotalSpend
	})

	for i := range out {
		out[i].TotalSpend = round2(out[i].TotalSpend)
	}
	return out
}
