package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneystory/moneystory/internal/analytics"
	"github.com/moneystory/moneystory/internal/cli"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income and expense totals per period",
		RunE:  runSummary,
	}

	cmd.Flags().Bool("weekly", false, "group by ISO week instead of month")
	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	weekly, err := cmd.Flags().GetBool("weekly")
	if err != nil {
		return err
	}

	store, err := initStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	user, err := resolveUser(ctx, store)
	if err != nil {
		return err
	}
	txns, err := store.GetAllTransactions(ctx, user.ID)
	if err != nil {
		return err
	}

	var summaries []analytics.PeriodSummary
	title := "Monthly summary"
	if weekly {
		summaries = analytics.WeeklySummaries(txns)
		title = "Weekly summary"
	} else {
		summaries = analytics.MonthlySummaries(txns)
	}

	fmt.Println(cli.TitleStyle.Render(title))
	if len(summaries) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No transactions yet."))
		return nil
	}

	fmt.Printf("  %-10s %12s %12s %12s\n", "Period", "Income", "Expense", "Net")
	for _, s := range summaries {
		net := cli.Money(s.Net)
		if s.Net < 0 {
			net = cli.ErrorStyle.Render(net)
		}
		fmt.Printf("  %-10s %12s %12s %12s\n",
			s.Period, cli.Money(s.TotalIncome), cli.Money(s.TotalExpense), net)
	}
	return nil
}
