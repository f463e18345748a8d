// Package story generates multi-day stories with an LLM: a storyboard
// planning call followed by one narrative call per story day, all sharing
// a growing conversation transcript. It supports two calling conventions,
// the responses API for reasoning-capable models and standard chat
// completions for everything else, plus deterministic mocks for testing.
package story

import (
	"errors"
	"fmt"
	"os"
)

var (
	ErrMissingAPIKey = errors.New("missing OpenAI API key")
	ErrModelFailed   = errors.New("model request failed")
	ErrInvalidParams = errors.New("invalid story parameters")
)

// Config holds the provider settings for a story run. It is loaded once
// at startup and immutable afterwards.
type Config struct {
	// APIKey authenticates against the OpenAI API.
	APIKey string

	// ModelName selects the model (e.g. "gpt-4o", "gpt-5-mini").
	ModelName string

	// ReasoningEffort controls reasoning depth for reasoning-capable
	// models: minimal, low, medium, or high. Ignored otherwise.
	ReasoningEffort string

	// Verbosity controls output length for reasoning-capable models:
	// low, medium, or high. Ignored otherwise.
	Verbosity string
}

// LoadConfig reads the story configuration from the environment.
// Only the API key is required; everything else has defaults.
func LoadConfig() (Config, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return Config{}, fmt.Errorf("%w: set OPENAI_API_KEY", ErrMissingAPIKey)
	}

	cfg := Config{
		APIKey:          apiKey,
		ModelName:       envOrDefault("OPENAI_MODEL", "gpt-4o"),
		ReasoningEffort: envOrDefault("OPENAI_REASONING_EFFORT", "medium"),
		Verbosity:       envOrDefault("OPENAI_VERBOSITY", "medium"),
	}
	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
