package toolkit

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/loomworks/agentry/internal/agent"
)

// AnalyzeFile returns a tool that reports line, word, character, and byte
// counts for a single file.
func AnalyzeFile() agent.Tool {
	return agent.Tool{
		Name:        "analyze_file",
		Description: "Analyze file contents and provide statistics",
		Properties: map[string]any{
			"file_path": agent.StringProperty("Path of the file to analyze"),
		},
		Required: []string{"file_path"},
		Handler: func(ctx context.Context, input json.RawMessage) agent.Result {
			var args struct {
				FilePath string `json:"file_path"`
			}
			if err := agent.DecodeInput(input, &args); err != nil {
				return agent.ErrorResult("Error analyzing file: %v", err)
			}

			stats, err := FileStats(args.FilePath)
			if err != nil {
				return agent.ErrorResult("Error analyzing file: %v", err)
			}
			return agent.TextResult(
				"File Analysis for %s:\n- Lines: %d\n- Words: %d\n- Characters: %d\n- File size: %d bytes",
				args.FilePath, stats.Lines, stats.Words, stats.Chars, stats.Bytes,
			)
		},
	}
}

// Stats summarizes one file's contents.
type Stats struct {
	Lines int
	Words int
	Chars int
	Bytes int64
}

// FileStats reads a file and counts its lines, words, and characters.
func FileStats(path string) (Stats, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Stats{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Stats{}, err
	}

	content := string(data)
	return Stats{
		Lines: len(strings.Split(strings.TrimSuffix(content, "\n"), "\n")),
		Words: len(strings.Fields(content)),
		Chars: len(content),
		Bytes: info.Size(),
	}, nil
}

// CountExtensions returns a tool that tallies files by extension under a
// directory, most frequent first.
func CountExtensions() agent.Tool {
	return agent.Tool{
		Name:        "count_extensions",
		Description: "Count files by extension in a directory tree",
		Properties: map[string]any{
			"directory": agent.StringProperty("Directory to scan recursively"),
		},
		Required: []string{"directory"},
		Handler: func(ctx context.Context, input json.RawMessage) agent.Result {
			var args struct {
				Directory string `json:"directory"`
			}
			if err := agent.DecodeInput(input, &args); err != nil {
				return agent.ErrorResult("Error counting extensions: %v", err)
			}

			counts, err := ExtensionCounts(args.Directory)
			if err != nil {
				return agent.ErrorResult("Error counting extensions: %v", err)
			}

			var b strings.Builder
			fmt.Fprintf(&b, "File extension counts in %s:\n", args.Directory)
			for _, ec := range counts {
				fmt.Fprintf(&b, "  %s: %d\n", ec.Extension, ec.Count)
			}
			return agent.Result{Text: b.String()}
		},
	}
}

// ExtensionCount pairs an extension with its file count.
type ExtensionCount struct {
	Extension string
	Count     int
}

// ExtensionCounts walks a directory tree and tallies files by extension,
// sorted by descending count, ties broken by name.
func ExtensionCounts(dir string) ([]ExtensionCount, error) {
	counts := make(map[string]int)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(d.Name())
		if ext == "" {
			ext = "no_extension"
		}
		counts[ext]++
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]ExtensionCount, 0, len(counts))
	for ext, n := range counts {
		out = append(out, ExtensionCount{Extension: ext, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Extension < out[j].Extension
	})
	return out, nil
}
