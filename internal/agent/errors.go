// Package agent provides a stateful conversation client over the Anthropic
// Messages API, with custom tool registration and pre-tool-use hooks for
// permission enforcement and logging. Conversation history lives only for
// the lifetime of one client; nothing is persisted between runs.
package agent

import "errors"

var (
	ErrMissingAPIKey    = errors.New("missing Anthropic API key")
	ErrRequestFailed    = errors.New("agent request failed")
	ErrEmptyResponse    = errors.New("agent returned no text")
	ErrMaxTurnsExceeded = errors.New("agent exceeded max turns")
	ErrDuplicateTool    = errors.New("tool already registered")
)
