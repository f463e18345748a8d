package toolkit

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/google/go-github/v77/github"

	"github.com/loomworks/agentry/internal/agent"
)

// NewGitHubClient creates a GitHub API client, authenticated when a token
// is available.
func NewGitHubClient(token string) *github.Client {
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return client
}

// GitHubRepo returns a tool that fetches public metadata for a GitHub
// repository: description, language, stars, forks, open issues.
func GitHubRepo(client *github.Client) agent.Tool {
	return agent.Tool{
		Name:        "github_repo",
		Description: "Look up a GitHub repository's description, language, and activity metrics",
		Properties: map[string]any{
			"repository": agent.StringProperty("Repository in owner/name form, e.g. golang/go"),
		},
		Required: []string{"repository"},
		Handler: func(ctx context.Context, input json.RawMessage) agent.Result {
			var args struct {
				Repository string `json:"repository"`
			}
			if err := agent.DecodeInput(input, &args); err != nil {
				return agent.ErrorResult("Error: %v", err)
			}

			owner, name, ok := splitRepo(args.Repository)
			if !ok {
				return agent.ErrorResult("Error: repository must be owner/name, got %q", args.Repository)
			}

			repo, _, err := client.Repositories.Get(ctx, owner, name)
			if err != nil {
				return agent.ErrorResult("Error fetching repository: %v", err)
			}

			return agent.TextResult(
				"%s/%s:\n- Description: %s\n- Language: %s\n- Stars: %d\n- Forks: %d\n- Open issues: %d",
				owner, name,
				repo.GetDescription(),
				repo.GetLanguage(),
				repo.GetStargazersCount(),
				repo.GetForksCount(),
				repo.GetOpenIssuesCount(),
			)
		},
	}
}

func splitRepo(full string) (owner, name string, ok bool) {
	parts := strings.Split(strings.TrimSpace(full), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
