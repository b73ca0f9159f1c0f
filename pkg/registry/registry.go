// Package registry holds the registered handler pool and its capability
// metadata.
package registry

import (
	"sync"

	"github.com/zen-systems/taskrouter/pkg/handler"
)

// Registration pairs a capability descriptor with its execution backend.
type Registration struct {
	Descriptor handler.Descriptor
	Handler    handler.Handler
}

// Registry manages the registered handler pool. Registration order is
// preserved: it is the routing tie-break. Registering a duplicate id
// replaces the prior entry but keeps its original order position.
type Registry struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*Registration

	// Index for O(1) capability lookups
	byCapability map[string][]string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byID:         make(map[string]*Registration),
		byCapability: make(map[string][]string),
	}
}

// Register adds a handler with its descriptor. Last write wins on duplicate
// ids.
func (r *Registry) Register(desc handler.Descriptor, h handler.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[desc.ID]; !exists {
		r.order = append(r.order, desc.ID)
	} else {
		r.dropCapabilityIndex(desc.ID)
	}
	r.byID[desc.ID] = &Registration{Descriptor: desc, Handler: h}

	for _, cap := range desc.Capabilities {
		r.byCapability[cap] = append(r.byCapability[cap], desc.ID)
	}
}

func (r *Registry) dropCapabilityIndex(id string) {
	for cap, ids := range r.byCapability {
		filtered := ids[:0]
		for _, existing := range ids {
			if existing != id {
				filtered = append(filtered, existing)
			}
		}
		if len(filtered) == 0 {
			delete(r.byCapability, cap)
		} else {
			r.byCapability[cap] = filtered
		}
	}
}

// Get returns the registration for a handler id.
func (r *Registry) Get(id string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.byID[id]
	if !ok {
		return Registration{}, false
	}
	return *reg, true
}

// List returns all registrations in registration order.
func (r *Registry) List() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Registration, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id])
	}
	return out
}

// IDs returns all handler ids in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// ListByCapability returns handler ids declaring the given capability.
func (r *Registry) ListByCapability(capability string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byCapability[capability]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
