package handler

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/zen-systems/taskrouter/pkg/task"
)

// AnthropicHandler executes tasks against Claude models.
type AnthropicHandler struct {
	name   string
	model  string
	client anthropic.Client
}

// NewAnthropicHandler creates an Anthropic-backed handler.
func NewAnthropicHandler(name, model, apiKey string) (*AnthropicHandler, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}

	client := anthropic.NewClient()
	return &AnthropicHandler{name: name, model: model, client: client}, nil
}

// Name returns the handler identifier.
func (h *AnthropicHandler) Name() string {
	return h.name
}

// Execute sends the task description to Claude and wraps the response.
func (h *AnthropicHandler) Execute(ctx context.Context, t task.Task) (*task.Result, error) {
	resp, err := h.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(h.model),
		MaxTokens: 4096,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(t.Description)),
		},
	})
	if err != nil {
		return nil, &HandlerError{Err: fmt.Errorf("anthropic API error: %w", err)}
	}

	var content string
	for _, block := range resp.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}

	return task.NewResult(content, h.name, t.ID).WithMetadata("model", h.model), nil
}
