package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agentry",
	Short: "Agentry - agent session demos and a multi-day story writer",
	Long: `Agentry bundles a set of runnable agent demonstrations: one-shot
queries, multi-turn conversations with context, custom tools, security
hooks, file and database inspection sessions, multi-provider comparisons,
and a multi-day story generation workflow.

Each subcommand is self-contained and reads its credentials from the
environment (a .env file is loaded automatically if present).`,
}

// Execute runs the root command
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
