package story

import (
	"strings"
	"testing"
)

func TestTranscript_AddAndLen(t *testing.T) {
	tr := NewTranscript()
	if tr.Len() != 0 {
		t.Errorf("new transcript should be empty, got %d entries", tr.Len())
	}

	tr.Add(RoleUser, "first")
	tr.Add(RoleAssistant, "second")

	if tr.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", tr.Len())
	}

	entries := tr.Entries()
	if entries[0].Role != RoleUser || entries[0].Text != "first" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Role != RoleAssistant || entries[1].Text != "second" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestTranscript_EntriesIsCopy(t *testing.T) {
	tr := NewTranscript()
	tr.Add(RoleUser, "original")

	entries := tr.Entries()
	entries[0].Text = "mutated"

	if tr.Entries()[0].Text != "original" {
		t.Error("mutating the returned slice changed the transcript")
	}
}

func TestTranscript_Flatten_SingleEntry(t *testing.T) {
	tr := NewTranscript()
	tr.Add(RoleUser, "just one prompt")

	if got := tr.Flatten(); got != "just one prompt" {
		t.Errorf("single entry should flatten to bare text, got %q", got)
	}
}

func TestTranscript_Flatten_MultipleEntries(t *testing.T) {
	tr := NewTranscript()
	tr.Add(RoleUser, "question")
	tr.Add(RoleAssistant, "answer")
	tr.Add(RoleUser, "follow-up")

	got := tr.Flatten()
	want := "user: question\n\nassistant: answer\n\nuser: follow-up"
	if got != want {
		t.Errorf("unexpected flattened transcript:\ngot:  %q\nwant: %q", got, want)
	}

	if !strings.HasPrefix(got, "user: ") {
		t.Error("flattened transcript should start with role prefix")
	}
}
