package cmd

import (
	"fmt"
	"time"

	"github.com/loomworks/agentry/internal/agent"
	"github.com/loomworks/agentry/internal/toolkit"
	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools [prompt]",
	Short: "Session with custom tools (calculator, clock, text, GitHub)",
	Long: `Run a session where the model can call custom tools: an arithmetic
calculator, the current time, rune-safe string reversal, and GitHub
repository metadata lookup.

Without arguments the command runs two demonstration prompts that
exercise the tools.

Required environment variables:
  ANTHROPIC_API_KEY - Anthropic API key
  GITHUB_TOKEN      - optional, raises the GitHub API rate limit

Examples:
  agentry tools
  agentry tools "What's 123 * 456 and what time is it?"
  agentry tools "How many stars does golang/go have?"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTools,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, args []string) error {
	registry, err := agent.NewRegistry(
		toolkit.Calculator(),
		toolkit.Clock(time.Now),
		toolkit.ReverseText(),
		toolkit.GitHubRepo(toolkit.NewGitHubClient("")),
	)
	if err != nil {
		return err
	}

	client, err := agent.NewClient(agent.Options{}, registry)
	if err != nil {
		return err
	}

	prompts := []string{
		"What's 123 * 456 and what time is it?",
		"Reverse the string 'Hello World'",
	}
	if len(args) == 1 {
		prompts = args
	} else {
		fmt.Println(headerStyle.Render("=== Testing Custom Tools ==="))
		fmt.Println()
	}

	for i, prompt := range prompts {
		if i > 0 {
			fmt.Println()
			fmt.Println(divider())
			fmt.Println()
		}
		fmt.Println(promptStyle.Render("User: " + prompt))
		answer, err := client.Query(cmd.Context(), prompt)
		if err != nil {
			return fmt.Errorf("query failed: %w", err)
		}
		fmt.Println(replyStyle.Render("Assistant: " + answer))
	}

	return nil
}
