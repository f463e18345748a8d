package toolkit

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFileStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	content := "one two three\nfour five\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	stats, err := FileStats(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Lines != 2 {
		t.Errorf("expected 2 lines, got %d", stats.Lines)
	}
	if stats.Words != 5 {
		t.Errorf("expected 5 words, got %d", stats.Words)
	}
	if stats.Chars != len(content) {
		t.Errorf("expected %d chars, got %d", len(content), stats.Chars)
	}
	if stats.Bytes != int64(len(content)) {
		t.Errorf("expected %d bytes, got %d", len(content), stats.Bytes)
	}
}

func TestFileStats_MissingFile(t *testing.T) {
	_, err := FileStats(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExtensionCounts(t *testing.T) {
	dir := t.TempDir()
	files := []string{"a.go", "b.go", "c.md", "Makefile", filepath.Join("sub", "d.go")}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("x"), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}

	counts, err := ExtensionCounts(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(counts) != 3 {
		t.Fatalf("expected 3 extensions, got %d: %v", len(counts), counts)
	}
	if counts[0].Extension != ".go" || counts[0].Count != 3 {
		t.Errorf("expected .go first with count 3, got %+v", counts[0])
	}

	var sawNoExt bool
	for _, c := range counts {
		if c.Extension == "no_extension" && c.Count == 1 {
			sawNoExt = true
		}
	}
	if !sawNoExt {
		t.Errorf("expected no_extension entry, got %v", counts)
	}
}

func TestAnalyzeFileTool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("hello world\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tool := AnalyzeFile()
	input, _ := json.Marshal(map[string]string{"file_path": path})
	res := tool.Handler(context.Background(), input)

	if res.IsError {
		t.Fatalf("unexpected error result: %s", res.Text)
	}
	if !strings.Contains(res.Text, "- Lines: 1") || !strings.Contains(res.Text, "- Words: 2") {
		t.Errorf("unexpected analysis output:\n%s", res.Text)
	}
}

func TestClockTool(t *testing.T) {
	fixed := func() time.Time {
		return time.Date(2025, 7, 14, 9, 30, 0, 0, time.UTC)
	}

	res := Clock(fixed).Handler(context.Background(), nil)
	if res.IsError {
		t.Fatalf("unexpected error result: %s", res.Text)
	}
	if res.Text != "Current time: 2025-07-14 09:30:00" {
		t.Errorf("unexpected clock output: %q", res.Text)
	}
}

func TestReverseTextTool(t *testing.T) {
	tool := ReverseText()

	res := tool.Handler(context.Background(), json.RawMessage(`{"text": "héllo"}`))
	if res.IsError {
		t.Fatalf("unexpected error result: %s", res.Text)
	}
	if res.Text != "Reversed: olléh" {
		t.Errorf("unexpected reversal: %q", res.Text)
	}
}
