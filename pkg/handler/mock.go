package handler

import (
	"context"
	"fmt"

	"github.com/zen-systems/taskrouter/pkg/task"
)

// MockHandler returns deterministic results for local runs and tests.
type MockHandler struct {
	name            string
	responses       map[string]string
	defaultResponse string
	executeErr      error
	selfCheckErr    error
	calls           int
}

// NewMockHandler creates a mock handler with a default response.
func NewMockHandler(name string) *MockHandler {
	return &MockHandler{
		name:            name,
		responses:       make(map[string]string),
		defaultResponse: "mock response:",
	}
}

// NewFailingMockHandler creates a mock handler whose Execute always fails.
func NewFailingMockHandler(name string, err error) *MockHandler {
	m := NewMockHandler(name)
	m.executeErr = err
	return m
}

// SetResponse registers a canned response for an exact task description.
func (m *MockHandler) SetResponse(description, response string) {
	m.responses[description] = response
}

// SetSelfCheckError makes SelfCheck report the given error.
func (m *MockHandler) SetSelfCheckError(err error) {
	m.selfCheckErr = err
}

// Name returns the handler identifier.
func (m *MockHandler) Name() string {
	return m.name
}

// Calls returns how many times Execute was invoked.
func (m *MockHandler) Calls() int {
	return m.calls
}

// Execute returns a deterministic result for the task.
func (m *MockHandler) Execute(ctx context.Context, t task.Task) (*task.Result, error) {
	m.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.executeErr != nil {
		return nil, m.executeErr
	}
	if response, ok := m.responses[t.Description]; ok {
		return task.NewResult(response, m.name, t.ID), nil
	}
	content := fmt.Sprintf("%s\n%s", m.defaultResponse, t.Description)
	return task.NewResult(content, m.name, t.ID), nil
}

// SelfCheck reports the configured health state.
func (m *MockHandler) SelfCheck() error {
	return m.selfCheckErr
}
