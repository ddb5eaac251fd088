package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/runoff/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an election and print the outcome",
	Long: `Runs an election and prints the winner on stdout.
A full tie prints every co-winner, one per line, in the order the options were declared.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		logLevel, _ := cmd.Flags().GetString("log-level")
		workers, _ := cmd.Flags().GetInt("workers")
		report, _ := cmd.Flags().GetBool("report")
		mermaid, _ := cmd.Flags().GetBool("mermaid")
		banner, _ := cmd.Flags().GetBool("banner")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return cli.Execute(ctx, cli.RunOptions{
			File:     file,
			Workers:  workers,
			Report:   report,
			Mermaid:  mermaid,
			Banner:   banner,
			Color:    cli.StdoutIsTerminal(),
			LogLevel: logLevel,
		}, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntP("workers", "w", 0, "Split each round's tally across n goroutines")
	runCmd.Flags().Bool("report", false, "Print a round-by-round report after the outcome")
	runCmd.Flags().Bool("mermaid", false, "Print the rounds as a Mermaid flowchart")
	runCmd.Flags().Bool("banner", false, "Print the banner before the outcome")
}
