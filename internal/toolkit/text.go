package toolkit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/loomworks/agentry/internal/agent"
)

// Clock returns a tool reporting the current date and time. The now
// function defaults to time.Now and is injectable for tests.
func Clock(now func() time.Time) agent.Tool {
	if now == nil {
		now = time.Now
	}
	return agent.Tool{
		Name:        "current_time",
		Description: "Get the current date and time",
		Properties:  map[string]any{},
		Handler: func(ctx context.Context, input json.RawMessage) agent.Result {
			return agent.TextResult("Current time: %s", now().Format("2006-01-02 15:04:05"))
		},
	}
}

// ReverseText returns a tool that reverses a string, rune by rune.
func ReverseText() agent.Tool {
	return agent.Tool{
		Name:        "reverse_text",
		Description: "Reverse a string",
		Properties: map[string]any{
			"text": agent.StringProperty("Text to reverse"),
		},
		Required: []string{"text"},
		Handler: func(ctx context.Context, input json.RawMessage) agent.Result {
			var args struct {
				Text string `json:"text"`
			}
			if err := agent.DecodeInput(input, &args); err != nil {
				return agent.ErrorResult("Error: %v", err)
			}
			return agent.TextResult("Reversed: %s", reverse(args.Text))
		},
	}
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
