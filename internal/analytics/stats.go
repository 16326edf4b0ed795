package analytics

import "github.com/moneystory/moneystory/internal/model"

// ComputeStats sums income and expenses for a transaction set. With no
// income the savings rate is defined as 0.0, not NaN or infinity.
func ComputeStats(txns []model.Transaction) Stats {
	var income, expense float64
	for _, tx := range txns {
		if tx.IsIncome {
			income += tx.Amount
		} else {
			expense += tx.Amount
		}
	}

	net := income - expense
	savingsRate := 0.0
	if income > 0 {
		savingsRate = net / income
	}

	return Stats{
		TotalIncome:  round2(income),
		TotalExpense: round2(expense),
		Net:          round2(net),
		SavingsRate:  round3(savingsRate),
	}
}
