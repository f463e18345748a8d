package story

import (
	"context"
	"fmt"
)

// MockModel is a deterministic Model implementation for testing.
// It records every transcript it receives and replies with scripted
// responses, or a generated response once the script runs out.
type MockModel struct {
	// Responses are returned in order, one per Complete call.
	Responses []string

	// Error, if set, is returned by Complete instead of a response.
	Error error

	// Calls counts Complete invocations.
	Calls int

	// Transcripts holds a snapshot of the entries seen on each call.
	Transcripts [][]Entry
}

// NewMockModel creates a mock that replies with the given responses in order.
func NewMockModel(responses ...string) *MockModel {
	return &MockModel{Responses: responses}
}

// NewMockModelWithError creates a mock that always fails.
func NewMockModelWithError(err error) *MockModel {
	return &MockModel{Error: err}
}

// Complete returns the next scripted response.
func (m *MockModel) Complete(ctx context.Context, transcript *Transcript) (string, error) {
	m.Calls++
	if transcript != nil {
		m.Transcripts = append(m.Transcripts, transcript.Entries())
	}

	if m.Error != nil {
		return "", m.Error
	}
	if m.Calls <= len(m.Responses) {
		return m.Responses[m.Calls-1], nil
	}
	return fmt.Sprintf("mock response %d", m.Calls), nil
}
