package analytics

import "fmt"

// Savings-rate tier boundaries for the first recommendation slot.
const (
	lowSavingsRate    = 0.10
	decentSavingsRate = 0.25
)

// maxActions caps the recommendation list.
const maxActions = 5

// minActions is the floor below which generic review fillers are added.
const minActions = 3

// fillerActions top the list up to minActions when few rules fire. Order
// matters; earlier entries are appended first.
var fillerActions = []string{
	"Block 30 minutes on your calendar to review this month's spending and write down 1-2 habits you want to change. Treat it like a personal retro, not punishment.",
	"Track every expense for one week next month, even the small ones. Visibility alone usually trims 5-10% of discretionary spend.",
}

// RecommendActions synthesizes a prioritized, deduplicated list of up to
// five next-month actions from the stats, breakdown, and pattern results.
// The filler rule guarantees at least three entries for any non-empty
// input.
func RecommendActions(stats Stats, categories []CategorySpend, patterns PatternReport) []string {
	actions := make([]string, 0, maxActions+2)

	// Exactly one savings tier fires.
	switch {
	case stats.SavingsRate < lowSavingsRate:
		actions = append(actions,
			"Set up an automatic transfer of at least 10% of your income into a separate savings or investment account at the start of the month.")
	case stats.SavingsRate < decentSavingsRate:
		actions = append(actions,
			"If it feels comfortable, increase your monthly savings by 5-10% of your income by slightly trimming non-essential spends.")
	default:
		actions = append(actions,
			"Your savings rate is strong. Protect it by keeping fixed essentials and recurring commitments stable.")
	}

	if patterns.HighFees.Total > 0 {
		actions = append(actions, fmt.Sprintf(
			"Open your statement and identify the %d fee/charge transaction(s) (~₹%.0f). Decide which ones you can avoid next month (late fees, ATM fees, convenience charges).",
			patterns.HighFees.Count, patterns.HighFees.Total))
	}

	if len(patterns.ImpulseSpikes.Days) > 0 && patterns.ImpulseSpikes.ExtraSpend > 0 {
		actions = append(actions, fmt.Sprintf(
			"Pick one of the high-spend days from this month (e.g., %s). Plan in advance how you'll handle a similar day next month to avoid the extra ~₹%.0f spend.",
			patterns.ImpulseSpikes.Days[0], patterns.ImpulseSpikes.ExtraSpend))
	}

	if patterns.Subscriptions.Total > 0 {
		actions = append(actions, fmt.Sprintf(
			"Do a 10-minute subscription audit. Keep what you use weekly and pause or cancel the rest to reclaim part of the ~₹%.0f you spent this month.",
			patterns.Subscriptions.Total))
	}

	for _, c := range categories {
		if c.Category == Uncategorized {
			continue
		}
		actions = append(actions, fmt.Sprintf(
			"Choose one simple rule to soften %s spends next month—for example, one fewer order or a fixed monthly cap.",
			c.Category))
		break
	}

	for _, filler := range fillerActions {
		if len(actions) >= minActions {
			break
		}
		actions = append(actions, filler)
	}

	seen := make(map[string]bool, len(actions))
	deduped := make([]string, 0, len(actions))
	for _, a := range actions {
		if seen[a] {
			continue
		}
		seen[a] = true
		deduped = append(deduped, a)
	}

	if len(deduped) > maxActions {
		deduped = deduped[:maxActions]
	}
	return deduped
}
