package main

import (
	"fmt"
	"log"
	"os"

	"github.com/aretw0/runoff/internal/cli"
	"github.com/aretw0/runoff/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts runoff as an MCP Server over Standard Input/Output.
AI agents can then run elections through the run_election and power_sources tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logLevel, _ := cmd.Flags().GetString("log-level")
		logger, err := cli.CreateLogger(logLevel)
		if err != nil {
			return err
		}

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		logger.Info("starting runoff MCP server (stdio)")

		srv := mcp.NewServer(logger)
		if err := srv.ServeStdio(); err != nil {
			return fmt.Errorf("MCP server execution failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
