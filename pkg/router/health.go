package router

import "github.com/zen-systems/taskrouter/pkg/handler"

// HandlerStatus reports one handler's health.
type HandlerStatus struct {
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

// HealthSnapshot reports per-handler and aggregate health. The router is
// healthy iff at least one handler is registered and reachable.
type HealthSnapshot struct {
	Healthy  bool                     `json:"healthy"`
	Handlers map[string]HandlerStatus `json:"handlers"`
}

// HealthCheck probes every registered handler. Handlers implementing
// SelfCheck report their own state; the rest are assumed healthy.
func (r *Router) HealthCheck() HealthSnapshot {
	snapshot := HealthSnapshot{Handlers: make(map[string]HandlerStatus)}

	for _, reg := range r.registry.List() {
		status := HandlerStatus{Healthy: true}
		if checker, ok := reg.Handler.(handler.SelfChecker); ok {
			if err := checker.SelfCheck(); err != nil {
				status = HandlerStatus{Healthy: false, Error: err.Error()}
			}
		}
		snapshot.Handlers[reg.Descriptor.ID] = status
		if status.Healthy {
			snapshot.Healthy = true
		}
	}

	return snapshot
}
