package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/moneystory/moneystory/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Serve the JSON API: transaction ingest, summaries, the monthly story
pipeline, behavior profiles, trends and budgets.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", ":8000", "listen address")
	cmd.Flags().StringSlice("allowed-origins", nil, "CORS allowed origins (default: all)")

	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.allowed_origins", cmd.Flags().Lookup("allowed-origins"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	store, err := initStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	resolver, err := initResolver()
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Addr:           viper.GetString("server.addr"),
		AllowedOrigins: viper.GetStringSlice("server.allowed_origins"),
	}, store, resolver, initGenerator(), slog.Default())

	return srv.Run(cmd.Context())
}
