package agent

import (
	"context"
	"encoding/json"
	"fmt"
)

// Result is the outcome of one tool invocation, fed back to the model.
type Result struct {
	Text    string
	IsError bool
}

// TextResult builds a successful tool result.
func TextResult(format string, args ...any) Result {
	return Result{Text: fmt.Sprintf(format, args...)}
}

// ErrorResult builds a failed tool result. Tool failures are reported to
// the model rather than aborting the session.
func ErrorResult(format string, args ...any) Result {
	return Result{Text: fmt.Sprintf(format, args...), IsError: true}
}

// Handler executes a tool call. Input is the raw JSON arguments produced
// by the model.
type Handler func(ctx context.Context, input json.RawMessage) Result

// Tool describes a model-invocable function.
type Tool struct {
	// Name is the identifier the model calls the tool by.
	Name string

	// Description tells the model what the tool does.
	Description string

	// Properties is the JSON schema properties map for the arguments.
	Properties map[string]any

	// Required lists the mandatory argument names.
	Required []string

	// Handler runs the tool.
	Handler Handler
}

// StringProperty is a shorthand for a string-typed schema property.
func StringProperty(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

// DecodeInput unmarshals raw tool arguments into args.
func DecodeInput(input json.RawMessage, args any) error {
	if len(input) == 0 {
		return nil
	}
	if err := json.Unmarshal(input, args); err != nil {
		return fmt.Errorf("failed to decode tool input: %w", err)
	}
	return nil
}

// Registry holds the tools available to a session, in registration order.
type Registry struct {
	tools  []Tool
	byName map[string]int
}

// NewRegistry creates an empty tool registry.
func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{byName: make(map[string]int)}
	for _, t := range tools {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a tool. Names must be unique within a registry.
func (r *Registry) Register(t Tool) error {
	if t.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if t.Handler == nil {
		return fmt.Errorf("tool %q has no handler", t.Name)
	}
	if _, exists := r.byName[t.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, t.Name)
	}
	r.byName[t.Name] = len(r.tools)
	r.tools = append(r.tools, t)
	return nil
}

// Get looks a tool up by name.
func (r *Registry) Get(name string) (Tool, bool) {
	if r == nil {
		return Tool{}, false
	}
	i, ok := r.byName[name]
	if !ok {
		return Tool{}, false
	}
	return r.tools[i], true
}

// List returns the registered tools in registration order.
func (r *Registry) List() []Tool {
	if r == nil {
		return nil
	}
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}
