package agent

import (
	"context"
	"encoding/json"
)

// Decision is a hook's verdict on a pending tool call.
type Decision struct {
	Deny   bool
	Reason string
}

// Allow lets the tool call proceed.
func Allow() Decision {
	return Decision{}
}

// Deny blocks the tool call. The reason is fed back to the model as an
// error tool result.
func Deny(reason string) Decision {
	return Decision{Deny: true, Reason: reason}
}

// HookInput describes the tool call a hook is inspecting.
type HookInput struct {
	// ToolName is the tool about to run.
	ToolName string

	// ToolInput is the raw JSON arguments for the call.
	ToolInput json.RawMessage
}

// Hook inspects a pending tool call and may deny it.
type Hook func(ctx context.Context, in HookInput) Decision

// HookMatcher binds hooks to tools. An empty Matcher applies to every
// tool; otherwise the matcher must equal the tool name exactly.
type HookMatcher struct {
	Matcher string
	Hooks   []Hook
}

// runPreToolUse evaluates all matching hooks in order. The first denial
// wins; hooks after it do not run.
func runPreToolUse(ctx context.Context, matchers []HookMatcher, in HookInput) Decision {
	for _, m := range matchers {
		if m.Matcher != "" && m.Matcher != in.ToolName {
			continue
		}
		for _, hook := range m.Hooks {
			if d := hook(ctx, in); d.Deny {
				return d
			}
		}
	}
	return Allow()
}
