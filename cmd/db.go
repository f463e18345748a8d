package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/loomworks/agentry/internal/agent"
	"github.com/loomworks/agentry/internal/toolkit"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db [sqlite-file]",
	Short: "Interactive database chat over a SQLite file",
	Long: `Open an interactive session where the model can inspect a SQLite
database: list tables, show table schemas, and run read-only SELECT
queries (capped at 100 rows).

Type 'exit' or 'quit' to end the session.

Required environment variables:
  ANTHROPIC_API_KEY - Anthropic API key

Examples:
  agentry db ./app.db`,
	Args: cobra.ExactArgs(1),
	RunE: runDB,
}

func init() {
	rootCmd.AddCommand(dbCmd)
}

func runDB(cmd *cobra.Command, args []string) error {
	database, err := toolkit.OpenDatabase(args[0])
	if err != nil {
		return err
	}
	defer database.Close()

	registry, err := agent.NewRegistry(database.Tools()...)
	if err != nil {
		return err
	}

	client, err := agent.NewClient(agent.Options{
		SystemPrompt:   "You are a helpful AI assistant with access to a SQLite database. Be concise and friendly. Only read data; never suggest modifying it.",
		PermissionMode: agent.PermissionBypass,
	}, registry)
	if err != nil {
		return err
	}

	fmt.Println(divider())
	fmt.Println(headerStyle.Render("Interactive Database Session"))
	fmt.Println(divider())
	fmt.Println(mutedStyle.Render("Database: " + args[0]))
	fmt.Println(mutedStyle.Render("Type 'exit' or 'quit' to end the session"))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())

		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "exit", "quit", "q":
			fmt.Println(okStyle.Render("\nGoodbye!"))
			return nil
		}

		answer, err := client.Query(cmd.Context(), input)
		if err != nil {
			fmt.Println(errStyle.Render(fmt.Sprintf("Error: %v", err)))
			fmt.Println(mutedStyle.Render("Continuing session..."))
			continue
		}
		fmt.Println(replyStyle.Render("Assistant: " + answer))
	}
}
