package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneystory/moneystory/internal/analytics"
	"github.com/moneystory/moneystory/internal/category"
	"github.com/moneystory/moneystory/internal/common"
	"github.com/moneystory/moneystory/internal/storage"
	"github.com/moneystory/moneystory/internal/story"
)

func sampleStoryInput() story.Input {
	return story.Input{
		Period: "2025-01",
		Stats:  analytics.Stats{TotalIncome: 80000, TotalExpense: 55000, Net: 25000, SavingsRate: 0.313},
		Categories: []analytics.CategorySpend{
			{Category: "Food", TotalSpend: 20000},
		},
		Patterns: analytics.PatternReport{CashflowFlag: analytics.CashflowOK},
	}
}

func TestInitGeneratorFallsBackWithoutAPIKey(t *testing.T) {
	viper.Set("story.provider", "openai")
	viper.Set("story.api_key", "")
	t.Cleanup(viper.Reset)

	gen := initGenerator()
	require.NotNil(t, gen)

	text, err := gen.Generate(context.Background(), sampleStoryInput())
	require.NoError(t, err)
	assert.NotEmpty(t, text)
}

func TestInitGeneratorFallsBackOnUnknownProvider(t *testing.T) {
	viper.Set("story.provider", "carrier-pigeon")
	t.Cleanup(viper.Reset)

	gen := initGenerator()
	require.NotNil(t, gen)

	text, err := gen.Generate(context.Background(), sampleStoryInput())
	require.NoError(t, err)
	assert.NotEmpty(t, text)
}

func TestLoadResolvedMonthEmptyMonth(t *testing.T) {
	store, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	user, err := store.FirstUser(ctx)
	require.NoError(t, err)

	_, _, err = loadResolvedMonth(ctx, store, category.NewResolver(nil), user.ID, 2025, 1)
	assert.ErrorIs(t, err, common.ErrNoTransactions)

	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Contains(t, userErr.UserMessage, "2025-01")
}
