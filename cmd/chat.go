package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/loomworks/agentry/internal/agent"
	"github.com/spf13/cobra"
)

var chatInteractive bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Multi-turn conversation with context carry-over",
	Long: `Run a conversation where every turn sees the full history.

The default mode runs a scripted three-turn exchange where follow-up
questions only make sense if the model remembers earlier answers. With
--interactive the command opens a REPL instead; type 'exit' or 'quit'
to end the session.

Required environment variables:
  ANTHROPIC_API_KEY - Anthropic API key`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().BoolVarP(&chatInteractive, "interactive", "i", false, "Open an interactive chat session")
}

func runChat(cmd *cobra.Command, args []string) error {
	client, err := agent.NewClient(agent.Options{
		SystemPrompt: "You are a helpful AI assistant. Be concise and friendly.",
	}, nil)
	if err != nil {
		return err
	}

	if chatInteractive {
		return interactiveChat(cmd, client)
	}

	fmt.Println(headerStyle.Render("=== Testing Continuous Conversation ==="))
	fmt.Println()

	// Each follow-up depends on the previous answer staying in context.
	turns := []string{
		"What's the capital of France?",
		"What's the population of that city?",
		"Tell me one famous landmark there.",
	}

	for i, prompt := range turns {
		if i > 0 {
			fmt.Println()
			fmt.Println(divider())
			fmt.Println()
		}
		fmt.Println(promptStyle.Render("User: " + prompt))
		answer, err := client.Query(cmd.Context(), prompt)
		if err != nil {
			return fmt.Errorf("turn %d failed: %w", i+1, err)
		}
		fmt.Println(replyStyle.Render("Assistant: " + answer))
	}

	return nil
}

func interactiveChat(cmd *cobra.Command, client *agent.Client) error {
	fmt.Println(divider())
	fmt.Println(headerStyle.Render("Interactive Chat Session"))
	fmt.Println(divider())
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
