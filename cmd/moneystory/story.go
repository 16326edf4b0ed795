package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/moneystory/moneystory/internal/analytics"
	"github.com/moneystory/moneystory/internal/category"
	"github.com/moneystory/moneystory/internal/cli"
	"github.com/moneystory/moneystory/internal/common"
	"github.com/moneystory/moneystory/internal/model"
	"github.com/moneystory/moneystory/internal/storage"
	"github.com/moneystory/moneystory/internal/story"
)

func storyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "story",
		Short: "Tell the money story for one month",
		Long: `Generate the monthly narrative: stats, category breakdown, detected
patterns and recommended actions for the given month.`,
		RunE: runStory,
	}

	addMonthFlags(cmd)
	return cmd
}

func addMonthFlags(cmd *cobra.Command) {
	now := time.Now().UTC()
	cmd.Flags().Int("year", now.Year(), "year of the month to analyze")
	cmd.Flags().Int("month", int(now.Month()), "month to analyze (1-12)")
}

func monthFlags(cmd *cobra.Command) (int, int, error) {
	year, err := cmd.Flags().GetInt("year")
	if err != nil {
		return 0, 0, err
	}
	month, err := cmd.Flags().GetInt("month")
	if err != nil {
		return 0, 0, err
	}
	return year, month, nil
}

// loadResolvedMonth fetches one month's transactions and resolves their
// categories.
func loadResolvedMonth(ctx context.Context, store *storage.SQLiteStore, resolver *category.Resolver, userID int64, year, month int) ([]model.Transaction, string, error) {
	start, end, err := model.MonthRange(year, month)
	if err != nil {
		return nil, "", err
	}
	txns, err := store.GetTransactionsByRange(ctx, userID, start, end)
	if err != nil {
		return nil, "", err
	}
	period := model.MonthPeriod(start)
	if len(txns) == 0 {
		return nil, period, common.NewUserError(
			fmt.Sprintf("No transactions recorded for %s. Import some first with 'moneystory import'.", period),
			common.ErrNoTransactions)
	}
	return resolver.Apply(txns), period, nil
}

func runStory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	year, month, err := monthFlags(cmd)
	if err != nil {
		return err
	}

	store, err := initStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	resolver, err := initResolver()
	if err != nil {
		return err
	}
	generator := initGenerator()

	user, err := resolveUser(ctx, store)
	if err != nil {
		return err
	}

	txns, period, err := loadResolvedMonth(ctx, store, resolver, user.ID, year, month)
	if err != nil {
		return err
	}

	stats := analytics.ComputeStats(txns)
	categories := analytics.CategoryBreakdown(txns)
	patterns := analytics.DetectPatterns(txns)

	text, err := generator.Generate(ctx, story.Input{
		Period:     period,
		Stats:      stats,
		Categories: categories,
		Patterns:   patterns,
	})
	if err != nil {
		return err
	}

	fmt.Println(cli.TitleStyle.Render("Money story for " + period))
	fmt.Println(cli.BoxStyle.Render(text))
	fmt.Println()
	fmt.Printf("Income %s  Expense %s  Net %s  Savings rate %.1f%%  Cashflow %s\n",
		cli.Money(stats.TotalIncome),
		cli.Money(stats.TotalExpense),
		cli.Money(stats.Net),
		stats.SavingsRate*100,
		cli.Flag(string(patterns.CashflowFlag)))

	if len(categories) > 0 {
		fmt.Println()
		fmt.Println(cli.BoldStyle.Render("Top categories"))
		for _, c := range categories {
			fmt.Printf("  %-20s %s\n", c.Category, cli.Money(c.TotalSpend))
		}
	}

	actions := analytics.RecommendActions(stats, categories, patterns)
	if len(actions) > 0 {
		fmt.Println()
		fmt.Println(cli.BoldStyle.Render("Next month"))
		for i, action := range actions {
			fmt.Printf("  %d. %s\n", i+1, action)
		}
	}
	return nil
}
