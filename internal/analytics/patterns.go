package analytics

import (
	"sort"
	"strings"

	"github.com/moneystory/moneystory/internal/model"
)

// Fee-like expenses are matched by description substring, case-insensitive.
var feeKeywords = []string{"fee", "charge", "penalty", "fine", "interest"}

// spikeThresholdFactor scales the median daily spend into the impulse
// spike threshold.
const spikeThresholdFactor = 1.5

func isFeeExpense(tx *model.Transaction) bool {
	if tx.IsIncome {
		return false
	}
	desc := strings.ToLower(tx.Description)
	for _, kw := range feeKeywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

func isSubscriptionExpense(tx *model.Transaction) bool {
	if tx.IsIncome {
		return false
	}
	if strings.ToLower(tx.Category) == "subscriptions" {
		return true
	}
	return strings.Contains(strings.ToLower(tx.Description), "subscription")
}

func isShoppingExpense(tx *model.Transaction) bool {
	return !tx.IsIncome && strings.ToLower(tx.Category) == "shopping"
}

// DetectPatterns runs the four independent heuristics over one
// transaction set: fee leakage, impulse-spend days, subscription bloat,
// and the overall cashflow flag.
func DetectPatterns(txns []model.Transaction) PatternReport {
	var report PatternReport

	var feeTotal float64
	for i := range txns {
		if isFeeExpense(&txns[i]) {
			report.HighFees.Count++
			feeTotal += txns[i].Amount
		}
	}
	report.HighFees.Total = round2(feeTotal)

	report.ImpulseSpikes = detectImpulseSpikes(txns)

	var subsTotal float64
	for i := range txns {
		if isSubscriptionExpense(&txns[i]) {
			report.Subscriptions.Count++
			subsTotal += txns[i].Amount
		}
	}
	report.Subscriptions.Total = round2(subsTotal)

	stats := ComputeStats(txns)
	switch {
	case stats.Net < 0:
		report.CashflowFlag = CashflowCritical
	case stats.SavingsRate < 0.10:
		report.CashflowFlag = CashflowWarning
	default:
		report.CashflowFlag = CashflowOK
	}

	return report
}

// detectImpulseSpikes flags calendar days whose expense total is strictly
// above 1.5x the median daily total. The median is computed only over
// days that had any expense; zero-spend days do not lower the baseline.
func detectImpulseSpikes(txns []model.Transaction) SpikeSummary {
	dailyTotals := make(map[string]float64)
	for _, tx := range txns {
		if tx.IsIncome {
			continue
		}
		dailyTotals[model.DayKey(tx.Timestamp)] += tx.Amount
	}

	summary := SpikeSummary{Days: []string{}}
	if len(dailyTotals) == 0 {
		return summary
	}

	totals := make([]float64, 0, len(dailyTotals))
	for _, v := range dailyTotals {
		totals = append(totals, v)
	}

	median := medianOf(totals)
	if median <= 0 {
		return summary
	}

	threshold := spikeThresholdFactor * median
	var extra float64
	for day, total := range dailyTotals {
		if total > threshold {
			summary.Days = append(summary.Days, day)
			extra += total - median
		}
	}
	sort.Strings(summary.Days)
	summary.ExtraSpend = round2(extra)
	return summary
}

// medianOf averages the two middle values for even-length input.
func medianOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
