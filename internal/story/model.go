package story

import (
	"context"
	"strings"
)

// Model produces the next assistant text from a transcript.
// Implementations must be stateless and thread-safe.
type Model interface {
	// Complete sends the full transcript and returns the assistant's reply.
	Complete(ctx context.Context, transcript *Transcript) (string, error)
}

// NewModel selects the calling convention for the configured model name.
// Reasoning-capable models use the responses API with effort and verbosity
// controls; everything else goes through standard chat completions.
func NewModel(cfg Config) (Model, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	if IsReasoningModel(cfg.ModelName) {
		return newReasoningModel(cfg), nil
	}
	return newChatModel(cfg), nil
}

// IsReasoningModel reports whether the model name refers to a
// reasoning-capable variant that accepts effort/verbosity controls.
func IsReasoningModel(name string) bool {
	return strings.Contains(strings.ToLower(name), "gpt-5")
}
