package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/loomworks/agentry/internal/agent"
	"github.com/loomworks/agentry/internal/config"
	"github.com/spf13/cobra"
)

var (
	providerName         string
	providersInteractive bool
)

var providersCmd = &cobra.Command{
	Use:   "providers [prompt]",
	Short: "Run the same query across multiple model providers",
	Long: `Query Anthropic-compatible model providers. GLM (Z.AI) and Deepseek
both expose Anthropic-compatible endpoints, so the same session client
drives all three backends.

The default mode runs a comparison: the same prompt against every
provider whose credential is configured. --provider restricts the run
to one backend; --interactive opens a slash-command REPL
(/claude, /glm, /deepseek, /all, /quit).

Required environment variables (any subset):
  ANTHROPIC_API_KEY - Anthropic
  GLM_API_KEY       - GLM 4.6 via Z.AI
  DEEPSEEK_API_KEY  - Deepseek

Examples:
  agentry providers
  agentry providers "Explain what a binary search tree is in one sentence."
  agentry providers --provider glm "What is the capital of France?"
  agentry providers --interactive`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)
	providersCmd.Flags().StringVar(&providerName, "provider", "", "Query a single provider (claude, glm, deepseek)")
	providersCmd.Flags().BoolVarP(&providersInteractive, "interactive", "i", false, "Open an interactive session with provider selection")
}

func runProviders(cmd *cobra.Command, args []string) error {
	if providersInteractive {
		return interactiveProviders(cmd)
	}

	prompt := "Explain what a binary search tree is in one sentence."
	if len(args) == 1 {
		prompt = args[0]
	}

	if providerName != "" {
		return queryProvider(cmd, config.Provider(providerName), prompt)
	}

	available := config.AvailableProviders()
	if len(available) == 0 {
		return fmt.Errorf("no API keys configured: set ANTHROPIC_API_KEY, GLM_API_KEY, or DEEPSEEK_API_KEY")
	}

	fmt.Println(divider())
	fmt.Println(headerStyle.Render("Multi-Provider Comparison"))
	fmt.Println(divider())
	fmt.Println()
	fmt.Println(promptStyle.Render("Query: " + prompt))

	for _, p := range available {
		fmt.Println()
		fmt.Println(accentStyle.Render("[" + strings.ToUpper(string(p)) + "]"))
		if err := queryProvider(cmd, p, prompt); err != nil {
			fmt.Println(errStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
	}

	fmt.Println()
	fmt.Println(okStyle.Render("Comparison completed"))
	return nil
}

// queryProvider runs one prompt against one provider in a fresh session.
func queryProvider(cmd *cobra.Command, p config.Provider, prompt string) error {
	opts, err := config.ProviderOptions(p)
	if err != nil {
		return err
	}
	opts.SystemPrompt = fmt.Sprintf("You are a helpful AI assistant powered by %s.", strings.ToUpper(string(p)))

	client, err := agent.NewClient(opts, nil)
	if err != nil {
		return err
	}

	answer, err := client.Query(cmd.Context(), prompt)
	if err != nil {
		return err
	}
	fmt.Println(replyStyle.Render(answer))
	return nil
}

func interactiveProviders(cmd *cobra.Command) error {
	available := config.AvailableProviders()
	if len(available) == 0 {
		return fmt.Errorf("no API keys configured: set ANTHROPIC_API_KEY, GLM_API_KEY, or DEEPSEEK_API_KEY")
	}

	names := make([]string, len(available))
	for i, p := range available {
		names[i] = string(p)
	}

	fmt.Println(divider())
	fmt.Println(headerStyle.Render("Multi-Provider Session - Interactive Mode"))
	fmt.Println(divider())
	fmt.Println(mutedStyle.Render("Available providers: " + strings.Join(names, ", ")))
	fmt.Println(mutedStyle.Render("Commands:"))
	fmt.Println(mutedStyle.Render("  /claude <prompt>   - Query Claude (Anthropic)"))
	fmt.Println(mutedStyle.Render("  /glm <prompt>      - Query GLM 4.6 (Z.AI)"))
	fmt.Println(mutedStyle.Render("  /deepseek <prompt> - Query Deepseek"))
	fmt.Println(mutedStyle.Render("  /all <prompt>      - Query all available providers"))
	fmt.Println(mutedStyle.Render("  /quit              - Exit"))

	defaultProvider := available[0]
	fmt.Println()
	fmt.Println(mutedStyle.Render("Default provider: " + strings.ToUpper(string(defaultProvider))))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if input == "/quit" {
			fmt.Println(okStyle.Render("Goodbye!"))
			return nil
		}

		target := defaultProvider
		prompt := input

		if strings.HasPrefix(input, "/") {
			command, rest, _ := strings.Cut(input, " ")
			prompt = strings.TrimSpace(rest)
			if prompt == "" {
				fmt.Println(errStyle.Render("Error: please provide a prompt"))
				continue
			}

			switch command {
			case "/claude", "/glm", "/deepseek":
				target = config.Provider(strings.TrimPrefix(command, "/"))
				if !target.Available() {
					fmt.Println(errStyle.Render("Error: provider not configured: " + string(target)))
					continue
				}
			case "/all":
				for _, p := range available {
					fmt.Println()
					fmt.Println(accentStyle.Render("[" + strings.ToUpper(string(p)) + "]"))
					if err := queryProvider(cmd, p, prompt); err != nil {
						fmt.Println(errStyle.Render(fmt.Sprintf("Error: %v", err)))
					}
				}
				continue
			default:
				fmt.Println(errStyle.Render("Error: unknown command " + command))
				continue
			}
		}

		fmt.Println()
		fmt.Println(accentStyle.Render("[" + strings.ToUpper(string(target)) + "]"))
		if err := queryProvider(cmd, target, prompt); err != nil {
			fmt.Println(errStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
	}
}
