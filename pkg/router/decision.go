package router

import (
	"time"

	"github.com/zen-systems/taskrouter/pkg/analyzer"
)

// ErrorKind classifies routing and dispatch failures.
type ErrorKind string

const (
	ErrorKindNone                   ErrorKind = ""
	ErrorKindEmptyRegistry          ErrorKind = "empty_registry"
	ErrorKindHandlerExecution       ErrorKind = "handler_execution_error"
	ErrorKindCompleteRoutingFailure ErrorKind = "complete_routing_failure"
	ErrorKindCancelled              ErrorKind = "cancelled"
)

// Alternative is a runner-up handler with its score.
type Alternative struct {
	HandlerID  string  `json:"handler_id"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// Decision captures one routing choice: the selected handler, its
// confidence, up to two alternatives, and the profile that drove scoring.
type Decision struct {
	ID           string           `json:"id"`
	HandlerID    string           `json:"handler_id"`
	Confidence   float64          `json:"confidence"`
	Reasoning    string           `json:"reasoning,omitempty"`
	Alternatives []Alternative    `json:"alternatives,omitempty"`
	Profile      analyzer.Profile `json:"profile"`
	Timestamp    time.Time        `json:"timestamp"`
}

// Outcome records what happened when a decision was dispatched.
type Outcome struct {
	Success      bool          `json:"success"`
	Duration     time.Duration `json:"duration"`
	ErrorKind    ErrorKind     `json:"error_kind,omitempty"`
	FallbackUsed bool          `json:"fallback_used"`
}
