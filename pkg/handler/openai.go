package handler

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/zen-systems/taskrouter/pkg/task"
)

// OpenAIHandler executes tasks against OpenAI models.
type OpenAIHandler struct {
	name   string
	model  string
	client openai.Client
}

// NewOpenAIHandler creates an OpenAI-backed handler.
func NewOpenAIHandler(name, model, apiKey string) (*OpenAIHandler, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}
	if model == "" {
		model = "gpt-5.2-instant"
	}

	client := openai.NewClient()
	return &OpenAIHandler{name: name, model: model, client: client}, nil
}

// Name returns the handler identifier.
func (h *OpenAIHandler) Name() string {
	return h.name
}

// Execute sends the task description to OpenAI and wraps the response.
func (h *OpenAIHandler) Execute(ctx context.Context, t task.Task) (*task.Result, error) {
	resp, err := h.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(h.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(t.Description),
		},
		MaxCompletionTokens: openai.Int(4096),
	})
	if err != nil {
		return nil, &HandlerError{Err: fmt.Errorf("openai API error: %w", err)}
	}

	if len(resp.Choices) == 0 {
		return nil, &HandlerError{Err: fmt.Errorf("openai returned no choices")}
	}

	content := resp.Choices[0].Message.Content
	return task.NewResult(content, h.name, t.ID).WithMetadata("model", h.model), nil
}
