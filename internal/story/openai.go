package story

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/responses"
	"github.com/openai/openai-go/v2/shared"
)

// chatModel implements Model using the standard chat completions API.
// The transcript is passed as an ordered list of role messages.
type chatModel struct {
	client openai.Client
	config Config
}

func newChatModel(cfg Config) *chatModel {
	return &chatModel{
		client: openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		config: cfg,
	}
}

// Complete sends the transcript as chat messages and returns the first
// choice's message content.
func (m *chatModel) Complete(ctx context.Context, transcript *Transcript) (string, error) {
	if transcript == nil || transcript.Len() == 0 {
		return "", fmt.Errorf("%w: empty transcript", ErrInvalidParams)
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, transcript.Len())
	for _, e := range transcript.Entries() {
		switch e.Role {
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(e.Text))
		default:
			messages = append(messages, openai.UserMessage(e.Text))
		}
	}

	completion, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(m.config.ModelName),
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrModelFailed, err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrModelFailed)
	}

	return completion.Choices[0].Message.Content, nil
}

// reasoningModel implements Model using the responses API, which accepts a
// single text input plus reasoning effort and verbosity controls.
type reasoningModel struct {
	client openai.Client
	config Config
}

func newReasoningModel(cfg Config) *reasoningModel {
	return &reasoningModel{
		client: openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		config: cfg,
	}
}

// Complete flattens the transcript into one input string, calls the
// responses API, and extracts the output text.
func (m *reasoningModel) Complete(ctx context.Context, transcript *Transcript) (string, error) {
	if transcript == nil || transcript.Len() == 0 {
		return "", fmt.Errorf("%w: empty transcript", ErrInvalidParams)
	}

	resp, err := m.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: shared.ResponsesModel(m.config.ModelName),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(transcript.Flatten()),
		},
		Reasoning: shared.ReasoningParam{
			Effort: shared.ReasoningEffort(m.config.ReasoningEffort),
		},
		Text: responses.ResponseTextConfigParam{
			Verbosity: responses.ResponseTextConfigVerbosity(m.config.Verbosity),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrModelFailed, err)
	}

	return extractResponseText(resp), nil
}

// extractResponseText pulls the assistant text out of a responses-API
// result. The output is a list of typed items (reasoning traces, messages,
// tool calls); only message items carry the narrative text. Falls back to
// the raw payload when nothing could be extracted.
func extractResponseText(resp *responses.Response) string {
	if text := resp.OutputText(); text != "" {
		return text
	}

	var b strings.Builder
	for _, item := range resp.Output {
		if item.Type != "message" {
			continue
		}
		for _, content := range item.Content {
			if content.Type == "output_text" {
				b.WriteString(content.Text)
			}
		}
	}
	if b.Len() > 0 {
		return b.String()
	}

	return resp.RawJSON()
}
