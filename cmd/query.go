package cmd

import (
	"fmt"

	"github.com/loomworks/agentry/internal/agent"
	"github.com/spf13/cobra"
)

var querySystemPrompt string

var queryCmd = &cobra.Command{
	Use:   "query [prompt]",
	Short: "Run one-shot queries against the model",
	Long: `Send a single prompt to the model and print the response.

Without arguments the command runs two demonstration passes: a plain
query, then a query with a system prompt and a restricted tool set.

Required environment variables:
  ANTHROPIC_API_KEY - Anthropic API key

Examples:
  agentry query
  agentry query "What is 2 + 2?"
  agentry query "List 3 Go best practices briefly" --system "You are an expert Go developer"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVar(&querySystemPrompt, "system", "", "System prompt for the session")
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) == 1 {
		client, err := agent.NewClient(agent.Options{SystemPrompt: querySystemPrompt}, nil)
		if err != nil {
			return err
		}
		answer, err := client.Query(ctx, args[0])
		if err != nil {
			return fmt.Errorf("query failed: %w", err)
		}
		fmt.Println(replyStyle.Render(answer))
		return nil
	}

	// Demonstration mode: plain query, then one with options.
	fmt.Println(headerStyle.Render("=== Test 1: Simple Math Query ==="))
	client, err := agent.NewClient(agent.Options{}, nil)
	if err != nil {
		return err
	}

	prompt := "What is 2 + 2?"
	fmt.Println(promptStyle.Render("User: " + prompt))
	answer, err := client.Query(ctx, prompt)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	fmt.Println(replyStyle.Render(answer))

	fmt.Println()
	fmt.Println(headerStyle.Render("=== Test 2: Query with Options ==="))
	restricted, err := agent.NewClient(agent.Options{
		SystemPrompt:   "You are an expert Go developer",
		PermissionMode: agent.PermissionAcceptEdits,
		AllowedTools:   []string{"analyze_file"},
	}, nil)
	if err != nil {
		return err
	}

	prompt = "List 3 Go best practices briefly"
	fmt.Println(promptStyle.Render("User: " + prompt))
	answer, err = restricted.Query(ctx, prompt)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	fmt.Println(replyStyle.Render(answer))

	return nil
}
