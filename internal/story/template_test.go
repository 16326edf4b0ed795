package story

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneystory/moneystory/internal/analytics"
)

func sampleInput() Input {
	return Input{
		Period: "2025-01",
		Stats: analytics.Stats{
			TotalIncome:  80000,
			TotalExpense: 55000,
			Net:          25000,
			SavingsRate:  0.313,
		},
		Categories: []analytics.CategorySpend{
			{Category: "Housing", TotalSpend: 20000},
			{Category: "Food", TotalSpend: 15000},
			{Category: "Shopping", TotalSpend: 10000},
			{Category: "Transport", TotalSpend: 10000},
		},
		Patterns: analytics.PatternReport{
			HighFees:      analytics.FeeSummary{Count: 2, Total: 450},
			ImpulseSpikes: analytics.SpikeSummary{Days: []string{"2025-01-14"}, ExtraSpend: 3200},
			Subscriptions: analytics.SubscriptionSummary{Count: 3, Total: 827},
			CashflowFlag:  analytics.CashflowOK,
		},
	}
}

func TestTemplateGeneratorDeterministic(t *testing.T) {
	gen := NewTemplateGenerator()
	in := sampleInput()

	first, err := gen.Generate(context.Background(), in)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		next, err := gen.Generate(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, first, next)
	}
}

func TestTemplateGeneratorContent(t *testing.T) {
	gen := NewTemplateGenerator()
	got, err := gen.Generate(context.Background(), sampleInput())
	require.NoError(t, err)

	assert.Contains(t, got, "2025-01")
	assert.Contains(t, got, "₹80000")
	assert.Contains(t, got, "₹55000")
	assert.Contains(t, got, "31.3%")
	assert.Contains(t, got, "Housing (20000); Food (15000); Shopping (10000)",
		"only the top three categories are named")
	assert.NotContains(t, got, "Transport")
	assert.Contains(t, got, "steady and healthy")
}

func TestTemplateGeneratorTone(t *testing.T) {
	gen := NewTemplateGenerator()

	in := sampleInput()
	in.Patterns.CashflowFlag = analytics.CashflowCritical
	got, err := gen.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, got, "at risk")

	in.Patterns.CashflowFlag = analytics.CashflowWarning
	got, err = gen.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, got, "thinner than ideal")
}

func TestTemplateGeneratorEmptyCategories(t *testing.T) {
	gen := NewTemplateGenerator()
	in := sampleInput()
	in.Categories = nil

	got, err := gen.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, got, "No major expenses recorded.")
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := buildPrompt(sampleInput())
	require.NoError(t, err)

	assert.Contains(t, prompt, "2025-01")
	assert.Contains(t, prompt, `"total_income":80000`)
	assert.Contains(t, prompt, `"cashflow_flag":"ok"`)
	assert.True(t, strings.Contains(prompt, "money story"))
}
