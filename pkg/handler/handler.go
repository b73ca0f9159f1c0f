package handler

import (
	"context"

	"github.com/zen-systems/taskrouter/pkg/task"
)

// Handler defines the execution interface every registered specialist,
// including the fallback handler, must implement. The routing engine treats
// execution as opaque: only success, failure, and duration are observed.
type Handler interface {
	// Execute performs the task and returns a result.
	Execute(ctx context.Context, t task.Task) (*task.Result, error)

	// Name returns the handler's identifier.
	Name() string
}

// SelfChecker is implemented by handlers that can report their own health.
// Handlers without it are assumed healthy.
type SelfChecker interface {
	SelfCheck() error
}

// Descriptor declares a handler's capability metadata. Descriptors are
// immutable once registered; routing reads them, never writes.
type Descriptor struct {
	ID             string             `json:"id" yaml:"id"`
	Description    string             `json:"description" yaml:"description"`
	Capabilities   []string           `json:"capabilities" yaml:"capabilities"`
	Tools          []string           `json:"tools,omitempty" yaml:"tools,omitempty"`
	DomainAffinity map[string]float64 `json:"domain_affinity,omitempty" yaml:"domain_affinity,omitempty"`
}

// Affinity returns the declared affinity for a domain, or the neutral
// default of 0.2 when the handler declares none.
func (d Descriptor) Affinity(domain string) float64 {
	if v, ok := d.DomainAffinity[domain]; ok {
		return v
	}
	return 0.2
}
