package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "runoff",
	Short: "Runoff picks a winner from ranked preferences",
	Long: `Runoff runs instant-runoff elections: options are ranked by every participant
and the weakest options are eliminated until one holds a majority or all remaining options tie.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("file", "f", "", "Election definition (YAML or JSON); defaults to the power source preset")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error or off")
}
