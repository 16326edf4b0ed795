package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moneystory/moneystory/internal/cli"
	"github.com/moneystory/moneystory/internal/common"
	"github.com/moneystory/moneystory/internal/importer"
	"github.com/moneystory/moneystory/internal/model"
)

const importBatchSize = 100

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import transactions from a CSV file",
		Long: `Import transactions from a CSV file into the local database.

The file must have timestamp, amount and is_income columns; category,
description, source and account_name are optional.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("dry-run", false, "Parse and report without saving")
	_ = viper.BindPFlag("import.dry_run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	f, err := os.Open(args[0])
	if err != nil {
		return common.NewUserError(fmt.Sprintf("Could not open %s", args[0]), err)
	}
	defer func() { _ = f.Close() }()

	txns, err := importer.ReadCSV(f)
	if err != nil {
		return err
	}

	if viper.GetBool("import.dry_run") {
		fmt.Printf("%s would import %d transactions\n", cli.TitleStyle.Render("Dry run:"), len(txns))
		return nil
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

	bar := progressbar.NewOptions(len(txns),
		progressbar.OptionSetDescription("Importing transactions"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	for start := 0; start < len(txns); start += importBatchSize {
		end := start + importBatchSize
		if end > len(txns) {
			end = len(txns)
		}
		batch := make([]model.Transaction, end-start)
		copy(batch, txns[start:end])
		if err := store.SaveTransactions(ctx, user.ID, batch); err != nil {
			return err
		}
		_ = bar.Add(end - start)
	}
	_ = bar.Finish()

	common.LogInfo("import complete", common.Fields{
		"file":         args[0],
		"transactions": len(txns),
		"user":         user.Name,
	})
	fmt.Printf("%s imported %d transactions for %s\n",
		cli.SuccessStyle.Render("Done:"), len(txns), user.Name)
	return nil
}
