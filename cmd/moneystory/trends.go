package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/moneystory/moneystory/internal/analytics"
	"github.com/moneystory/moneystory/internal/cli"
	"github.com/moneystory/moneystory/internal/model"
)

func trendsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Compare a month's category spend against its baseline",
		RunE:  runTrends,
	}

	cmd.Flags().String("period", "", "month to compare (YYYY-MM, default: current)")
	return cmd
}

func runTrends(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	period, err := cmd.Flags().GetString("period")
	if err != nil {
		return err
	}
	if period == "" {
		period = model.MonthPeriod(time.Now().UTC())
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
	user, err := resolveUser(ctx, store)
	if err != nil {
		return err
	}
	txns, err := store.GetAllTransactions(ctx, user.ID)
	if err != nil {
		return err
	}

	trends := analytics.CategoryTrends(resolver.Apply(txns), period)

	fmt.Println(cli.TitleStyle.Render("Trends for " + period))
	if len(trends) == 0 {
		fmt.Println(cli.SubtleStyle.Render("Not enough history to compare."))
		return nil
	}

	fmt.Printf("  %-20s %12s %12s %12s %8s\n", "Category", "Current", "Baseline", "Delta", "Change")
	for _, row := range trends {
		change := cli.SubtleStyle.Render("n/a")
		if row.DeltaPct != nil {
			change = fmt.Sprintf("%+.1f%%", *row.DeltaPct*100)
			if *row.DeltaPct > 0 {
				change = cli.ErrorStyle.Render(change)
			} else {
				change = cli.SuccessStyle.Render(change)
			}
		}
		fmt.Printf("  %-20s %12s %12s %12s %8s\n",
			row.Category,
			cli.Money(row.Current),
			cli.Money(row.Baseline),
			cli.Money(row.Delta),
			change)
	}
	return nil
}
