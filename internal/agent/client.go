package agent

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// messageService is the slice of the Anthropic client the session needs.
// Tests substitute a scripted implementation.
type messageService interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// Client is a stateful agent session. Every Query appends to the ordered
// message history, which is resent in full on each request so the model
// keeps the conversation context. Client is not safe for concurrent use.
type Client struct {
	svc     messageService
	opts    Options
	tools   *Registry
	history []anthropic.MessageParam
}

// NewClient creates a session against the Anthropic API, or an
// Anthropic-compatible endpoint when BaseURL/AuthToken are set.
// The registry may be nil for tool-less sessions.
func NewClient(opts Options, tools *Registry) (*Client, error) {
	opts.applyDefaults()

	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" && opts.AuthToken == "" {
		return nil, fmt.Errorf("%w: set ANTHROPIC_API_KEY or provide an auth token", ErrMissingAPIKey)
	}

	var reqOpts []option.RequestOption
	if opts.AuthToken != "" {
		reqOpts = append(reqOpts, option.WithAuthToken(opts.AuthToken))
	} else {
		reqOpts = append(reqOpts, option.WithAPIKey(apiKey))
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}

	client := anthropic.NewClient(reqOpts...)

	return &Client{
		svc:   &client.Messages,
		opts:  opts,
		tools: tools,
	}, nil
}

// Query sends a user prompt, runs the assistant/tool loop until the model
// stops asking for tools, and returns the concatenated assistant text.
func (c *Client) Query(ctx context.Context, prompt string) (string, error) {
	c.history = append(c.history, anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)))

	var text strings.Builder

	for turn := 0; ; turn++ {
		if turn >= c.opts.MaxTurns {
			return "", fmt.Errorf("%w: stopped after %d turns", ErrMaxTurnsExceeded, c.opts.MaxTurns)
		}

		msg, err := c.svc.New(ctx, c.buildParams())
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}
		c.history = append(c.history, msg.ToParam())

		var toolUses []anthropic.ToolUseBlock
		for _, block := range msg.Content {
			switch b := block.AsAny().(type) {
			case anthropic.TextBlock:
				if text.Len() > 0 {
					text.WriteString("\n")
				}
				text.WriteString(b.Text)
			case anthropic.ToolUseBlock:
				toolUses = append(toolUses, b)
			}
		}

		if msg.StopReason != anthropic.StopReasonToolUse || len(toolUses) == 0 {
			break
		}

		// Tool results go back as the next user turn.
		results := make([]anthropic.ContentBlockParamUnion, 0, len(toolUses))
		for _, use := range toolUses {
			results = append(results, c.runTool(ctx, use))
		}
		c.history = append(c.history, anthropic.NewUserMessage(results...))
	}

	if text.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return text.String(), nil
}

// Reset clears the conversation history.
func (c *Client) Reset() {
	c.history = nil
}

// HistoryLen returns the number of messages accumulated in the session.
func (c *Client) HistoryLen() int {
	return len(c.history)
}

// runTool resolves, gates, and executes one tool call, producing the
// result block for the model. Failures and denials are reported as error
// results, never as session errors.
func (c *Client) runTool(ctx context.Context, use anthropic.ToolUseBlock) anthropic.ContentBlockParamUnion {
	tool, ok := c.tools.Get(use.Name)
	if !ok || !c.opts.toolAllowed(use.Name) {
		return anthropic.NewToolResultBlock(use.ID, fmt.Sprintf("tool %q is not available", use.Name), true)
	}

	if c.opts.PermissionMode != PermissionBypass {
		decision := runPreToolUse(ctx, c.opts.PreToolUse, HookInput{
			ToolName:  use.Name,
			ToolInput: use.Input,
		})
		if decision.Deny {
			return anthropic.NewToolResultBlock(use.ID, "tool call denied: "+decision.Reason, true)
		}
	}

	result := tool.Handler(ctx, use.Input)
	return anthropic.NewToolResultBlock(use.ID, result.Text, result.IsError)
}

// buildParams assembles the request from options, history, and the
// allowed subset of registered tools.
func (c *Client) buildParams() anthropic.MessageNewParams {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.opts.Model),
		MaxTokens: int64(c.opts.MaxTokens),
		Messages:  c.history,
	}

	if c.opts.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: c.opts.SystemPrompt}}
	}

	for _, tool := range c.tools.List() {
		if !c.opts.toolAllowed(tool.Name) {
			continue
		}
		properties := tool.Properties
		if properties == nil {
			properties = map[string]any{}
		}
		params.Tools = append(params.Tools, anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        tool.Name,
				Description: anthropic.String(tool.Description),
				InputSchema: anthropic.ToolInputSchemaParam{
					Properties: properties,
					Required:   tool.Required,
				},
			},
		})
	}

	return params
}
