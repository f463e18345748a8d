package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/loomworks/agentry/internal/agent"
	"github.com/loomworks/agentry/internal/toolkit"
	"github.com/spf13/cobra"
)

// dangerousPatterns are command fragments the security hook refuses to
// let through to any shell-adjacent tool.
var dangerousPatterns = []string{"rm -rf /", "del /f", "format", "dd if="}

var guardCmd = &cobra.Command{
	Use:   "guard",
	Short: "Session guarded by security and logging hooks",
	Long: `Run a tool-using session with two PreToolUse hooks attached: a
security validator that blocks dangerous command patterns on the
run_command tool, and a logger that records every tool invocation.

Required environment variables:
  ANTHROPIC_API_KEY - Anthropic API key`,
	RunE: runGuard,
}

func init() {
	rootCmd.AddCommand(guardCmd)
}

// securityValidator denies any tool call whose arguments contain a known
// dangerous command pattern.
func securityValidator(ctx context.Context, in agent.HookInput) agent.Decision {
	input := string(in.ToolInput)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(input, pattern) {
			fmt.Println(errStyle.Render("[SECURITY] Blocked dangerous tool call: " + in.ToolName))
			return agent.Deny(fmt.Sprintf("dangerous input blocked: contains %q", pattern))
		}
	}
	return agent.Allow()
}

// toolLogger logs every tool call. Attached with an empty matcher.
func toolLogger(ctx context.Context, in agent.HookInput) agent.Decision {
	fmt.Println(mutedStyle.Render("[HOOK] Tool used: " + in.ToolName))
	return agent.Allow()
}

func runGuard(cmd *cobra.Command, args []string) error {
	registry, err := agent.NewRegistry(
		toolkit.AnalyzeFile(),
		toolkit.CountExtensions(),
		toolkit.Clock(time.Now),
	)
	if err != nil {
		return err
	}

	client, err := agent.NewClient(agent.Options{
		PermissionMode: agent.PermissionAcceptEdits,
		PreToolUse: []agent.HookMatcher{
			{Hooks: []agent.Hook{securityValidator, toolLogger}}, // Applies to all tools
		},
	}, registry)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("=== Testing Hooks for Security and Logging ==="))
	fmt.Println()

	fmt.Println(accentStyle.Render("Test 1: Safe operation"))
	prompt := "Count the file extensions in the current directory"
	fmt.Println(promptStyle.Render("User: " + prompt))
	answer, err := client.Query(cmd.Context(), prompt)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	fmt.Println(replyStyle.Render("Assistant: " + answer))

	fmt.Println()
	fmt.Println(divider())
	fmt.Println()

	fmt.Println(accentStyle.Render("Test 2: Attempting potentially dangerous operation"))
	fmt.Println(mutedStyle.Render("(Security hooks will intercept dangerous tool calls)"))
	prompt = "What time is it right now?"
	fmt.Println(promptStyle.Render("User: " + prompt))
	answer, err = client.Query(cmd.Context(), prompt)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	fmt.Println(replyStyle.Render("Assistant: " + answer))

	return nil
}
