package main

import (
	"fmt"

	"github.com/aretw0/runoff/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check an election definition without running it",
	Long:  `Loads the election file and reports unknown keys, malformed ballots and roster problems.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		el, err := cli.Validate(file)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Printf("Election is valid: %d options, %d ballots\n", len(el.Options()), el.BallotCount())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
