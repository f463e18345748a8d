// Package config resolves model provider settings from the environment.
//
// Besides Anthropic itself, GLM (Z.AI) and Deepseek expose
// Anthropic-compatible endpoints, so all three can be driven through the
// same client by swapping the base URL and credential.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/loomworks/agentry/internal/agent"
)

// ErrMissingAPIKey indicates the environment variable holding the
// provider's credential is not set.
var ErrMissingAPIKey = errors.New("API key not set")

// ErrUnknownProvider indicates an unrecognized provider name.
var ErrUnknownProvider = errors.New("unknown provider")

// Provider identifies a model backend.
type Provider string

const (
	ProviderClaude   Provider = "claude"
	ProviderGLM      Provider = "glm"
	ProviderDeepseek Provider = "deepseek"
)

// providers in the order they are probed and displayed.
var providers = []Provider{ProviderClaude, ProviderGLM, ProviderDeepseek}

// envVar returns the environment variable holding the provider's credential.
func (p Provider) envVar() string {
	switch p {
	case ProviderClaude:
		return "ANTHROPIC_API_KEY"
	case ProviderGLM:
		return "GLM_API_KEY"
	case ProviderDeepseek:
		return "DEEPSEEK_API_KEY"
	}
	return ""
}

// Available reports whether the provider's credential is present in the
// environment.
func (p Provider) Available() bool {
	return os.Getenv(p.envVar()) != ""
}

// ProviderOptions returns client options configured for the provider.
// Non-Anthropic providers authenticate with a bearer token against their
// Anthropic-compatible endpoint.
func ProviderOptions(p Provider) (agent.Options, error) {
	key := os.Getenv(p.envVar())
	if p.envVar() != "" && key == "" {
		return agent.Options{}, fmt.Errorf("%w: %s", ErrMissingAPIKey, p.envVar())
	}

	switch p {
	case ProviderClaude:
		return agent.Options{
			Model:  "claude-sonnet-4-5-20250929",
			APIKey: key,
		}, nil
	case ProviderGLM:
		return agent.Options{
			Model:     "glm-4.6",
			BaseURL:   "https://api.z.ai/api/anthropic",
			AuthToken: key,
		}, nil
	case ProviderDeepseek:
		return agent.Options{
			Model:     "deepseek-chat",
			BaseURL:   "https://api.deepseek.com",
			AuthToken: key,
		}, nil
	}
	return agent.Options{}, fmt.Errorf("%w: %s", ErrUnknownProvider, p)
}

// AvailableProviders returns the providers whose credentials are configured.
func AvailableProviders() []Provider {
	var available []Provider
	for _, p := range providers {
		if p.Available() {
			available = append(available, p)
		}
	}
	return available
}
