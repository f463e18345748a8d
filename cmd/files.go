package cmd

import (
	"fmt"

	"github.com/loomworks/agentry/internal/agent"
	"github.com/loomworks/agentry/internal/toolkit"
	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files [directory]",
	Short: "File analysis session with inspection tools",
	Long: `Run a session where the model can analyze files: per-file statistics
(lines, words, characters, size), an extension census of a directory
tree, and recent commit history when the directory is a Git repository.

The directory defaults to the current working directory.

Required environment variables:
  ANTHROPIC_API_KEY - Anthropic API key

Examples:
  agentry files
  agentry files /path/to/project`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFiles,
}

func init() {
	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	registry, err := agent.NewRegistry(
		toolkit.AnalyzeFile(),
		toolkit.CountExtensions(),
		toolkit.RecentCommits(),
	)
	if err != nil {
		return err
	}

	client, err := agent.NewClient(agent.Options{
		SystemPrompt:   "You are a file processing assistant that can analyze files and summarize repository activity.",
		PermissionMode: agent.PermissionAcceptEdits,
	}, registry)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("=== File Processing Session ==="))
	fmt.Println()

	prompts := []string{
		fmt.Sprintf("Count the file extensions in %s", dir),
		fmt.Sprintf("If %s is a Git repository, summarize its recent commits", dir),
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
