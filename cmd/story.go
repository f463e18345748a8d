package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/loomworks/agentry/internal/story"
	"github.com/spf13/cobra"
)

const defaultPremise = "A detective solving a mysterious case in Tokyo"

var (
	storyDays  int
	storyOut   string
	storyStart string
)

var storyCmd = &cobra.Command{
	Use:   "story [premise]",
	Short: "Write a multi-day story with storyboard planning",
	Long: `Generate a multi-day story: one storyboard planning call followed by
one narrative call per day, each day seeing the full conversation so
far. The assembled document is saved as markdown.

Without a premise argument the command asks for one interactively.
The start date is derived deterministically from the premise unless
--start-date is given.

Required environment variables:
  OPENAI_API_KEY          - OpenAI API key
  OPENAI_MODEL            - model name (default: gpt-4o)
  OPENAI_REASONING_EFFORT - for reasoning models (default: medium)
  OPENAI_VERBOSITY        - for reasoning models (default: medium)

Examples:
  agentry story "A lighthouse keeper discovers a message in a bottle" --days 5
  agentry story --days 3 --out mystory.md
  agentry story "A chef opens a restaurant on Mars" --start-date 2026-03-01`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStory,
}

func init() {
	rootCmd.AddCommand(storyCmd)
	storyCmd.Flags().IntVar(&storyDays, "days", 3, "Number of days the story spans")
	storyCmd.Flags().StringVar(&storyOut, "out", "", "Output file path (default: story_openai_<timestamp>.md)")
	storyCmd.Flags().StringVar(&storyStart, "start-date", "", "Story start date as YYYY-MM-DD (default: derived from premise)")
}

func runStory(cmd *cobra.Command, args []string) error {
	cfg, err := story.LoadConfig()
	if err != nil {
		return err
	}

	premise := ""
	if len(args) == 1 {
		premise = strings.TrimSpace(args[0])
	}
	if premise == "" {
		premise = askPremise()
	}

	var start time.Time
	if storyStart != "" {
		start, err = story.ParseStartDate(storyStart)
		if err != nil {
			return err
		}
	}

	fmt.Println(headerStyle.Render("=== Story Writer ==="))
	fmt.Println()
	fmt.Println(mutedStyle.Render("Provider: OpenAI"))
	fmt.Println(mutedStyle.Render("Model: " + cfg.ModelName))
	if story.IsReasoningModel(cfg.ModelName) {
		fmt.Println(mutedStyle.Render("Reasoning Effort: " + cfg.ReasoningEffort))
		fmt.Println(mutedStyle.Render("Verbosity: " + cfg.Verbosity))
	}
	fmt.Println()
	fmt.Println(promptStyle.Render(fmt.Sprintf("Writing a %d-day story based on: %s", storyDays, premise)))
	fmt.Println()

	model, err := story.NewModel(cfg)
	if err != nil {
		return err
	}
	writer := story.NewWriter(model, cfg)

	result, err := writer.Write(cmd.Context(), story.Params{
		Premise:   premise,
		Days:      storyDays,
		StartDate: start,
		Progress: func(s story.Section) {
			fmt.Println(divider())
			if s.Day == 0 {
				fmt.Println(accentStyle.Render("CREATING STORYBOARD & CHARACTER PROFILES"))
			} else {
				fmt.Println(accentStyle.Render(fmt.Sprintf("DAY %d - %s", s.Day, story.FormatDayDate(s.Date))))
			}
			fmt.Println()
			fmt.Println(replyStyle.Render(s.Text))
			fmt.Println()
		},
	})
	if err != nil {
		return err
	}

	path, err := result.Save(storyOut)
	if err != nil {
		return err
	}

	fmt.Println(divider())
	fmt.Println(okStyle.Render("✓ Story complete! Saved to: " + path))
	fmt.Println(mutedStyle.Render(fmt.Sprintf("Story spanned from %s to %s",
		story.FormatLongDate(result.StartDate), story.FormatLongDate(result.EndDate))))
	return nil
}

// askPremise prompts for a story premise on stdin, falling back to a
// default when the user enters nothing.
func askPremise() string {
	fmt.Println(promptStyle.Render("Enter your story premise (e.g., 'A detective solving a mysterious case in Tokyo'):"))
	fmt.Print("> ")

	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		if premise := strings.TrimSpace(scanner.Text()); premise != "" {
			return premise
		}
	}
	fmt.Println(mutedStyle.Render("Using default premise: " + defaultPremise))
	return defaultPremise
}
