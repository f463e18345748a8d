package story

import "strings"

// Role identifies who produced a transcript entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Entry is one role-tagged text exchange with the model.
type Entry struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Transcript is the append-only conversation log for one story run.
// It grows monotonically and is resent in full on every model call so
// that each day's narrative can reference everything written before it.
type Transcript struct {
	entries []Entry
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Add appends an entry to the transcript.
func (t *Transcript) Add(role Role, text string) {
	t.entries = append(t.entries, Entry{Role: role, Text: text})
}

// Len returns the number of entries.
func (t *Transcript) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the transcript entries in order.
func (t *Transcript) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Flatten collapses the transcript into a single input string for models
// that take one text input instead of an ordered message list. A single
// entry flattens to its bare text; multiple entries become role-prefixed
// lines separated by blank lines.
func (t *Transcript) Flatten() string {
	if len(t.entries) == 1 {
		return t.entries[0].Text
	}

	parts := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		parts = append(parts, string(e.Role)+": "+e.Text)
	}
	return strings.Join(parts, "\n\n")
}
