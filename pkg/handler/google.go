package handler

import (
	"context"
	"fmt"

	"github.com/zen-systems/taskrouter/pkg/task"
	"google.golang.org/genai"
)

// GoogleHandler executes tasks against Gemini models.
type GoogleHandler struct {
	name   string
	model  string
	client *genai.Client
}

// NewGoogleHandler creates a Google Gemini-backed handler.
func NewGoogleHandler(name, model, apiKey string) (*GoogleHandler, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google API key is required")
	}
	if model == "" {
		model = "gemini-2.0-pro"
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create google client: %w", err)
	}

	return &GoogleHandler{name: name, model: model, client: client}, nil
}

// Name returns the handler identifier.
func (h *GoogleHandler) Name() string {
	return h.name
}

// Execute sends the task description to Gemini and wraps the response.
func (h *GoogleHandler) Execute(ctx context.Context, t task.Task) (*task.Result, error) {
	resp, err := h.client.Models.GenerateContent(ctx, h.model, genai.Text(t.Description), nil)
	if err != nil {
		return nil, &HandlerError{Err: fmt.Errorf("google API error: %w", err)}
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return nil, &HandlerError{Err: fmt.Errorf("google returned no candidates")}
	}

	var content string
	if resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.Text != "" {
				content += part.Text
			}
		}
	}

	return task.NewResult(content, h.name, t.ID).WithMetadata("model", h.model), nil
}
