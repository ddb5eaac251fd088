package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/runoff/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts a stateless JSON API that runs one election per request and exposes Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		workers, _ := cmd.Flags().GetInt("workers")
		logLevel, _ := cmd.Flags().GetString("log-level")
		if !cmd.Flags().Changed("log-level") {
			logLevel = "info"
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return cli.Serve(ctx, ":"+port, workers, logLevel)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().IntP("workers", "w", 0, "Split each round's tally across n goroutines")
}
