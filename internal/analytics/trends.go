package analytics

import (
	"math"
	"sort"

	"github.com/moneystory/moneystory/internal/model"
)

// CategoryTrends compares the current period's per-category expense
// against the average monthly spend across all other periods. Categories
// seen only in the baseline produce negative deltas; categories with no
// baseline at all get a nil DeltaPct. Rows are sorted by descending
// absolute percentage change, with nil treated as zero so brand-new
// categories sort last among movers.
//
// Transactions without a category still count toward period presence and
// the baseline month divisor; they are only excluded from the
// per-category totals. Run the category resolver first for meaningful
// rows.
func CategoryTrends(txns []model.Transaction, currentPeriod string) []TrendRow {
	current := make(map[string]float64)
	baseline := make(map[string]float64)
	basePeriods := make(map[string]bool)
	order := make([]string, 0)

	seen := func(cat string) {
		if _, ok := current[cat]; ok {
			return
		}
		if _, ok := baseline[cat]; ok {
			return
		}
		order = append(order, cat)
	}

	var haveCurrent bool
	for _, tx := range txns {
		if tx.IsIncome {
			continue
		}
		period := model.MonthPeriod(tx.Timestamp)
		isCurrent := period == currentPeriod
		if isCurrent {
			haveCurrent = true
		} else {
			basePeriods[period] = true
		}
		if !tx.HasCategory() {
			continue
		}
		seen(tx.Category)
		if isCurrent {
			current[tx.Category] += tx.Amount
		} else {
			baseline[tx.Category] += tx.Amount
		}
	}

	if !haveCurrent || len(basePeriods) == 0 {
		return []TrendRow{}
	}

	months := float64(len(basePeriods))
	rows := make([]TrendRow, 0, len(order))
	for _, cat := range order {
		cur := current[cat]
		base := baseline[cat] / months
		delta := cur - base

		row := TrendRow{
			Category: cat,
			Current:  round2(cur),
			Baseline: round2(base),
			Delta:    round2(delta),
		}
		if base > 0 {
			pct := round3(delta / base)
			row.DeltaPct = &pct
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return absPct(rows[i].DeltaPct) > absPct(rows[j].DeltaPct)
	})
	return rows
}

func absPct(p *float64) float64 {
	if p == nil {
		return 0
	}
	return math.Abs(*p)
}
