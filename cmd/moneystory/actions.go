package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneystory/moneystory/internal/analytics"
	"github.com/moneystory/moneystory/internal/cli"
)

func actionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actions",
		Short: "Recommend actions for next month",
		RunE:  runActions,
	}

	addMonthFlags(cmd)
	return cmd
}

func runActions(cmd *cobra.Command, _ []string) error {
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
	actions := analytics.RecommendActions(stats, categories, patterns)

	fmt.Println(cli.TitleStyle.Render("Actions after " + period))
	for i, action := range actions {
		fmt.Printf("  %d. %s\n", i+1, action)
	}
	return nil
}
