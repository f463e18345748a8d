package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var suiteCmd = &cobra.Command{
	Use:   "suite",
	Short: "Run the demo commands sequentially",
	Long: `Execute the non-interactive demos one after another and print a
pass/fail summary. Demos that need credentials fail individually
without stopping the run.

Required environment variables:
  ANTHROPIC_API_KEY - Anthropic API key`,
	RunE: runSuite,
}

func init() {
	rootCmd.AddCommand(suiteCmd)
}

func runSuite(cmd *cobra.Command, args []string) error {
	demos := []struct {
		name string
		run  func(*cobra.Command, []string) error
	}{
		{"Simple Query", runQuery},
		{"Conversation", runChat},
		{"Custom Tools", runTools},
		{"Hooks", runGuard},
		{"File Processor", runFiles},
		{"Error Handling", runErrors},
	}

	fmt.Println(divider())
	fmt.Println(headerStyle.Render("Agentry Demo Suite"))
	fmt.Println(divider())

	type outcome struct {
		name   string
		passed bool
	}
	results := make([]outcome, 0, len(demos))

	for _, demo := range demos {
		fmt.Println()
		fmt.Println(divider())
		fmt.Println(accentStyle.Render("RUNNING: " + demo.name))
		fmt.Println(divider())
		fmt.Println()

		err := demo.run(cmd, nil)
		if err != nil {
			fmt.Println()
			fmt.Println(errStyle.Render(fmt.Sprintf("✗ %s failed: %v", demo.name, err)))
		} else {
			fmt.Println()
			fmt.Println(okStyle.Render("✓ " + demo.name + " completed successfully"))
		}
		results = append(results, outcome{demo.name, err == nil})
	}

	fmt.Println()
	fmt.Println(divider())
	fmt.Println(headerStyle.Render("SUMMARY"))
	fmt.Println(divider())

	passed := 0
	for _, r := range results {
		if r.passed {
			passed++
			fmt.Println(okStyle.Render("✓ PASS: " + r.name))
		} else {
			fmt.Println(errStyle.Render("✗ FAIL: " + r.name))
		}
	}

	fmt.Println()
	fmt.Printf("Results: %d/%d demos passed\n", passed, len(results))

	if passed != len(results) {
		return fmt.Errorf("%d of %d demos failed", len(results)-passed, len(results))
	}
	return nil
}
