package analytics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendActionsSavingsTiers(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		fragment string
	}{
		{name: "low rate suggests automatic transfer", rate: 0.05, fragment: "automatic transfer"},
		{name: "middling rate suggests increasing savings", rate: 0.18, fragment: "increase your monthly savings"},
		{name: "strong rate suggests protecting it", rate: 0.4, fragment: "savings rate is strong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actions := RecommendActions(Stats{SavingsRate: tt.rate}, nil, PatternReport{})
			require.NotEmpty(t, actions)
			assert.Contains(t, actions[0], tt.fragment)

			// Exactly one savings tier fires.
			var tierCount int
			for _, a := range actions {
				if strings.Contains(a, "automatic transfer") ||
					strings.Contains(a, "increase your monthly savings") ||
					strings.Contains(a, "savings rate is strong") {
					tierCount++
				}
			}
			assert.Equal(t, 1, tierCount)
		})
	}
}

func TestRecommendActionsPatternRules(t *testing.T) {
	stats := Stats{SavingsRate: 0.3}
	patterns := PatternReport{
		HighFees:      FeeSummary{Count: 2, Total: 450},
		ImpulseSpikes: SpikeSummary{Days: []string{"2025-01-04", "2025-01-19"}, ExtraSpend: 1800},
		Subscriptions: SubscriptionSummary{Count: 3, Total: 827},
		CashflowFlag:  CashflowOK,
	}
	categories := []CategorySpend{{Category: "Food", TotalSpend: 9000}}

	actions := RecommendActions(stats, categories, patterns)
	require.Len(t, actions, 5)

	assert.Contains(t, actions[1], "2 fee/charge transaction(s)")
	assert.Contains(t, actions[2], "2025-01-04", "the first spike day is cited")
	assert.Contains(t, actions[3], "subscription audit")
	assert.Contains(t, actions[4], "Food")
}

func TestRecommendActionsCapAndFloor(t *testing.T) {
	// Everything fires: the list is capped at 5.
	full := RecommendActions(
		Stats{SavingsRate: 0.05},
		[]CategorySpend{{Category: "Shopping", TotalSpend: 4000}},
		PatternReport{
			HighFees:      FeeSummary{Count: 1, Total: 100},
			ImpulseSpikes: SpikeSummary{Days: []string{"2025-01-02"}, ExtraSpend: 500},
			Subscriptions: SubscriptionSummary{Count: 1, Total: 499},
		},
	)
	assert.LessOrEqual(t, len(full), 5)

	// Nothing beyond the savings tier fires: fillers top the list up to 3.
	minimal := RecommendActions(Stats{SavingsRate: 0.5}, nil, PatternReport{})
	require.Len(t, minimal, 3)
	assert.Contains(t, minimal[1], "Block 30 minutes")
}

func TestRecommendActionsDeduplicates(t *testing.T) {
	actions := RecommendActions(
		Stats{SavingsRate: 0.05},
		[]CategorySpend{{Category: "Food", TotalSpend: 4000}},
		PatternReport{Subscriptions: SubscriptionSummary{Count: 1, Total: 499}},
	)

	seen := make(map[string]bool)
	for _, a := range actions {
		assert.False(t, seen[a], "duplicate action: %s", a)
		seen[a] = true
	}
}

func TestRecommendActionsSkipsUncategorizedTopCategory(t *testing.T) {
	actions := RecommendActions(
		Stats{SavingsRate: 0.5},
		[]CategorySpend{{Category: Uncategorized, TotalSpend: 4000}},
		PatternReport{},
	)
	for _, a := range actions {
		assert.NotContains(t, a, Uncategorized)
	}
}

func TestRecommendActionsUsesFirstRealCategoryPastUncategorized(t *testing.T) {
	actions := RecommendActions(
		Stats{SavingsRate: 0.5},
		[]CategorySpend{
			{Category: Uncategorized, TotalSpend: 4000},
			{Category: "Food", TotalSpend: 3000},
			{Category: "Transport", TotalSpend: 1000},
		},
		PatternReport{},
	)

	var cited string
	for _, a := range actions {
		if strings.Contains(a, "soften") {
			cited = a
		}
	}
	require.NotEmpty(t, cited)
	assert.Contains(t, cited, "Food")
	assert.NotContains(t, cited, Uncategorized)
	assert.NotContains(t, cited, "Transport")
}
