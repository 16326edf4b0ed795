package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/moneystory/moneystory/internal/analytics"
	"github.com/moneystory/moneystory/internal/cli"
)

func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the behavioral persona for each month",
		RunE:  runProfile,
	}
}

func runProfile(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

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

	profile := analytics.BuildProfiles(resolver.Apply(txns))

	fmt.Println(cli.TitleStyle.Render("Behavior profile"))
	if len(profile.LabelsByPeriod) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No transactions yet."))
		return nil
	}

	periods := make([]string, 0, len(profile.LabelsByPeriod))
	for period := range profile.LabelsByPeriod {
		periods = append(periods, period)
	}
	sort.Strings(periods)

	for _, period := range periods {
		fmt.Printf("  %s  %s\n", period, cli.BoldStyle.Render(profile.LabelsByPeriod[period]))
	}

	fmt.Println()
	fmt.Println(cli.BoldStyle.Render("Personas"))
	names := make([]string, 0, len(profile.ClusterDescriptions))
	for name := range profile.ClusterDescriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-18s %s\n", name, cli.SubtleStyle.Render(profile.ClusterDescriptions[name]))
	}
	return nil
}
