package cmd

import (
	"errors"
	"fmt"

	"github.com/loomworks/agentry/internal/agent"
	"github.com/spf13/cobra"
)

var errorsCmd = &cobra.Command{
	Use:   "errors",
	Short: "Demonstrate error classification for agent sessions",
	Long: `Run a set of queries under deliberately constrained conditions and
show how each failure mode is classified: missing credentials, request
failures, exhausted turn budgets, and unexpected errors.

Required environment variables:
  ANTHROPIC_API_KEY - Anthropic API key (tests behave differently without it)`,
	RunE: runErrors,
}

func init() {
	rootCmd.AddCommand(errorsCmd)
}

func runErrors(cmd *cobra.Command, args []string) error {
	fmt.Println(headerStyle.Render("=== Testing Error Handling ==="))
	fmt.Println()

	fmt.Println(accentStyle.Render("Test 1: Successful Query"))
	client, err := agent.NewClient(agent.Options{}, nil)
	if err != nil {
		reportAgentError(err)
	} else {
		answer, err := client.Query(cmd.Context(), "Say hello")
		if err != nil {
			reportAgentError(err)
		} else {
			fmt.Println(okStyle.Render("Success: " + answer))
		}
	}

	fmt.Println()
	fmt.Println(divider())
	fmt.Println()

	fmt.Println(accentStyle.Render("Test 2: Query with Edge Case Options"))
	limited, err := agent.NewClient(agent.Options{
		MaxTurns:     1,
		AllowedTools: []string{},
	}, nil)
	if err != nil {
		reportAgentError(err)
	} else {
		answer, err := limited.Query(cmd.Context(), "Calculate the square root of 144")
		if err != nil {
			fmt.Println(warningStyle.Render(fmt.Sprintf("Handled error gracefully: %v", err)))
		} else {
			fmt.Println(okStyle.Render("Response: " + answer))
		}
	}

	fmt.Println()
	fmt.Println(divider())
	fmt.Println()

	fmt.Println(accentStyle.Render("Test 3: Handling Configuration Issues"))
	misconfigured, err := agent.NewClient(agent.Options{
		Model:        "no-such-model",
		SystemPrompt: "Test agent",
	}, nil)
	if err != nil {
		reportAgentError(err)
		return nil
	}
	answer, err := misconfigured.Query(cmd.Context(), "What is 1+1?")
	if err != nil {
		reportAgentError(err)
		return nil
	}
	fmt.Println(okStyle.Render("Success: " + answer))

	return nil
}

// reportAgentError prints a classified description of a session error.
func reportAgentError(err error) {
	switch {
	case errors.Is(err, agent.ErrMissingAPIKey):
		fmt.Println(errStyle.Render("ERROR: API key not configured"))
		fmt.Println(mutedStyle.Render("Set ANTHROPIC_API_KEY in the environment or a .env file"))
	case errors.Is(err, agent.ErrRequestFailed):
		fmt.Println(errStyle.Render(fmt.Sprintf("ERROR: request failed: %v", err)))
	case errors.Is(err, agent.ErrMaxTurnsExceeded):
		fmt.Println(errStyle.Render(fmt.Sprintf("ERROR: turn budget exhausted: %v", err)))
	case errors.Is(err, agent.ErrEmptyResponse):
		fmt.Println(errStyle.Render("ERROR: model returned no text"))
	default:
		fmt.Println(errStyle.Render(fmt.Sprintf("ERROR: unexpected error: %v", err)))
	}
}
