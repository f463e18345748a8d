package agent

// PermissionMode controls how tool invocations are gated.
type PermissionMode string

const (
	// PermissionDefault runs every PreToolUse hook before a tool executes.
	PermissionDefault PermissionMode = "default"

	// PermissionAcceptEdits behaves like PermissionDefault; it exists so
	// callers can mark sessions that are expected to modify files.
	PermissionAcceptEdits PermissionMode = "acceptEdits"

	// PermissionBypass skips PreToolUse hooks entirely.
	PermissionBypass PermissionMode = "bypassPermissions"
)

// Options configures an agent session.
type Options struct {
	// Model is the model identifier sent with every request.
	Model string

	// SystemPrompt, when set, is sent as the system instruction.
	SystemPrompt string

	// MaxTokens caps each assistant response.
	MaxTokens int

	// MaxTurns bounds the assistant/tool round trips for one Query.
	// Zero means the default.
	MaxTurns int

	// AllowedTools restricts which registered tools are advertised and
	// executable. Nil allows every registered tool.
	AllowedTools []string

	// PermissionMode gates tool execution.
	PermissionMode PermissionMode

	// PreToolUse hooks run before each tool call unless bypassed.
	PreToolUse []HookMatcher

	// APIKey overrides the ANTHROPIC_API_KEY environment variable.
	APIKey string

	// BaseURL points the client at an Anthropic-compatible endpoint.
	BaseURL string

	// AuthToken authenticates against Anthropic-compatible endpoints
	// that use bearer tokens instead of API keys.
	AuthToken string
}

const (
	defaultModel     = "claude-sonnet-4-5"
	defaultMaxTokens = 4096
	defaultMaxTurns  = 8
)

// DefaultOptions returns the baseline session configuration.
func DefaultOptions() Options {
	return Options{
		Model:          defaultModel,
		MaxTokens:      defaultMaxTokens,
		MaxTurns:       defaultMaxTurns,
		PermissionMode: PermissionDefault,
	}
}

func (o *Options) applyDefaults() {
	if o.Model == "" {
		o.Model = defaultModel
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = defaultMaxTokens
	}
	if o.MaxTurns <= 0 {
		o.MaxTurns = defaultMaxTurns
	}
	if o.PermissionMode == "" {
		o.PermissionMode = PermissionDefault
	}
}

// toolAllowed reports whether a registered tool may be used this session.
func (o *Options) toolAllowed(name string) bool {
	if o.AllowedTools == nil {
		return true
	}
	for _, allowed := range o.AllowedTools {
		if allowed == name {
			return true
		}
	}
	return false
}
