package task

import (
	"time"

	"github.com/google/uuid"
)

// Task is an opaque unit of work handed to a handler. The routing engine
// never inspects the payload; only the description feeds analysis.
type Task struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	Payload     map[string]string `json:"payload,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// New creates a task with a fresh ID.
func New(description string) Task {
	return Task{
		ID:          uuid.NewString(),
		Description: description,
		Payload:     make(map[string]string),
		CreatedAt:   time.Now().UTC(),
	}
}

// Result is the output a handler produces for a task.
type Result struct {
	ID        string            `json:"id"`
	TaskID    string            `json:"task_id"`
	Handler   string            `json:"handler"`
	Content   string            `json:"content"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewResult creates a result for a task.
func NewResult(content, handlerName, taskID string) *Result {
	return &Result{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		Handler:   handlerName,
		Content:   content,
		Metadata:  make(map[string]string),
		CreatedAt: time.Now().UTC(),
	}
}

// WithMetadata returns a copy of the result with an additional metadata entry.
func (r *Result) WithMetadata(key, value string) *Result {
	out := &Result{
		ID:        r.ID,
		TaskID:    r.TaskID,
		Handler:   r.Handler,
		Content:   r.Content,
		Metadata:  copyMetadata(r.Metadata),
		CreatedAt: r.CreatedAt,
	}
	out.Metadata[key] = value
	return out
}

func copyMetadata(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
