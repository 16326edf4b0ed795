package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/moneystory/moneystory/internal/cli"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Show monthly budgets per category",
		RunE:  runBudgetsList,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Create or update a category budget",
		Args:  cobra.ExactArgs(2),
		RunE:  runBudgetsSet,
	})
	return cmd
}

func runBudgetsList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	user, err := resolveUser(ctx, store)
	if err != nil {
		return err
	}
	budgets, err := store.ListBudgets(ctx, user.ID)
	if err != nil {
		return err
	}

	fmt.Println(cli.TitleStyle.Render("Budgets"))
	if len(budgets) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No budgets set."))
		return nil
	}
	for _, b := range budgets {
		fmt.Printf("  %-20s %s\n", b.Category, cli.Money(b.Amount))
	}
	return nil
}

func runBudgetsSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[1], err)
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
	if err := store.UpsertBudget(ctx, user.ID, args[0], amount); err != nil {
		return err
	}

	fmt.Printf("%s %s set to %s\n", cli.SuccessStyle.Render("Budget:"), args[0], cli.Money(amount))
	return nil
}
