package config

import (
	"errors"
	"testing"
)

func TestProviderOptions_Claude(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	opts, err := ProviderOptions(ProviderClaude)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Model != "claude-sonnet-4-5-20250929" {
		t.Errorf("unexpected model %q", opts.Model)
	}
	if opts.APIKey != "test-key" {
		t.Errorf("expected API key to be set, got %q", opts.APIKey)
	}
	if opts.BaseURL != "" {
		t.Errorf("expected no base URL override, got %q", opts.BaseURL)
	}
}

func TestProviderOptions_GLM(t *testing.T) {
	t.Setenv("GLM_API_KEY", "glm-key")

	opts, err := ProviderOptions(ProviderGLM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Model != "glm-4.6" {
		t.Errorf("unexpected model %q", opts.Model)
	}
	if opts.BaseURL != "https://api.z.ai/api/anthropic" {
		t.Errorf("unexpected base URL %q", opts.BaseURL)
	}
	if opts.AuthToken != "glm-key" {
		t.Errorf("expected auth token to be set, got %q", opts.AuthToken)
	}
}

func TestProviderOptions_Deepseek(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "ds-key")

	opts, err := ProviderOptions(ProviderDeepseek)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Model != "deepseek-chat" {
		t.Errorf("unexpected model %q", opts.Model)
	}
	if opts.BaseURL != "https://api.deepseek.com" {
		t.Errorf("unexpected base URL %q", opts.BaseURL)
	}
}

func TestProviderOptions_MissingKey(t *testing.T) {
	t.Setenv("GLM_API_KEY", "")

	_, err := ProviderOptions(ProviderGLM)
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestProviderOptions_Unknown(t *testing.T) {
	_, err := ProviderOptions(Provider("gemini"))
	if !errors.Is(err, ErrUnknownProvider) {
		t.Errorf("expected ErrUnknownProvider, got %v", err)
	}
}

func TestAvailableProviders(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("GLM_API_KEY", "glm-key")
	t.Setenv("DEEPSEEK_API_KEY", "ds-key")

	got := AvailableProviders()
	want := []Provider{ProviderGLM, ProviderDeepseek}
	if len(got) != len(want) {
		t.Fatalf("expected %d providers, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("provider %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
