package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/runoff"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of runoff",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("runoff version %s\n", strings.TrimSpace(runoff.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
