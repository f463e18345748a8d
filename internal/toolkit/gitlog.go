package toolkit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/plumbing/storer"

	"github.com/loomworks/agentry/internal/agent"
)

const defaultCommitLimit = 10

// CommitSummary is one line of repository history for the model.
type CommitSummary struct {
	ShortHash string
	Subject   string
	Author    string
	When      string
}

// RecentCommits returns a tool that lists the most recent commits of a
// local Git repository.
func RecentCommits() agent.Tool {
	return agent.Tool{
		Name:        "recent_commits",
		Description: "List the most recent commits of a local Git repository",
		Properties: map[string]any{
			"path":  agent.StringProperty("Path to a local Git repository"),
			"limit": map[string]any{"type": "integer", "description": "Maximum number of commits to return (default 10)"},
		},
		Required: []string{"path"},
		Handler: func(ctx context.Context, input json.RawMessage) agent.Result {
			var args struct {
				Path  string `json:"path"`
				Limit int    `json:"limit"`
			}
			if err := agent.DecodeInput(input, &args); err != nil {
				return agent.ErrorResult("Error reading repository: %v", err)
			}
			if args.Limit <= 0 {
				args.Limit = defaultCommitLimit
			}

			commits, err := ListRecentCommits(args.Path, args.Limit)
			if err != nil {
				return agent.ErrorResult("Error reading repository: %v", err)
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Last %d commits in %s:\n", len(commits), args.Path)
			for _, c := range commits {
				fmt.Fprintf(&b, "  %s %s (%s, %s)\n", c.ShortHash, c.Subject, c.Author, c.When)
			}
			return agent.Result{Text: b.String()}
		},
	}
}

// ListRecentCommits opens a local repository and walks the log from HEAD.
func ListRecentCommits(path string, limit int) ([]CommitSummary, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	ref, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	commitIter, err := repo.Log(&git.LogOptions{From: ref.Hash()})
	if err != nil {
		return nil, fmt.Errorf("failed to get log: %w", err)
	}

	var commits []CommitSummary
	err = commitIter.ForEach(func(c *object.Commit) error {
		if len(commits) >= limit {
			return storer.ErrStop
		}
		commits = append(commits, CommitSummary{
			ShortHash: c.Hash.String()[:8],
			Subject:   strings.TrimSpace(strings.SplitN(c.Message, "\n", 2)[0]),
			Author:    c.Author.Name,
			When:      c.Author.When.Format("2006-01-02"),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate commits: %w", err)
	}

	return commits, nil
}
