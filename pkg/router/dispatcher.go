package router

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/zen-systems/taskrouter/pkg/handler"
	"github.com/zen-systems/taskrouter/pkg/registry"
	"github.com/zen-systems/taskrouter/pkg/task"
)

// CompleteRoutingFailureError reports that both the selected handler and the
// fallback failed. Both underlying messages are preserved.
type CompleteRoutingFailureError struct {
	HandlerID   string
	FallbackID  string
	PrimaryErr  error
	FallbackErr error
}

func (e *CompleteRoutingFailureError) Error() string {
	return fmt.Sprintf("complete routing failure: handler %s: %v; fallback %s: %v",
		e.HandlerID, e.PrimaryErr, e.FallbackID, e.FallbackErr)
}

func (e *CompleteRoutingFailureError) Unwrap() error {
	return e.PrimaryErr
}

// Dispatcher invokes the selected handler and enforces the single-fallback
// policy. It imposes no timeout of its own: callers bound latency via the
// context.
type Dispatcher struct {
	registry   *registry.Registry
	fallbackID string
	debug      bool
}

// NewDispatcher creates a dispatcher using the given fallback handler id.
func NewDispatcher(reg *registry.Registry, fallbackID string) *Dispatcher {
	return &Dispatcher{registry: reg, fallbackID: fallbackID}
}

// Dispatch executes the decision's handler. On handler error it invokes the
// fallback once; on fallback success the result is annotated with the
// original error and its transient classification, and the outcome keeps the
// handler-execution error kind. Cancellation is surfaced as a distinct
// outcome and is never retried via fallback.
func (d *Dispatcher) Dispatch(ctx context.Context, decision *Decision, t task.Task) (Outcome, *task.Result, error) {
	start := time.Now()

	result, err := d.execute(ctx, decision.HandlerID, t)
	if err == nil {
		return Outcome{Success: true, Duration: time.Since(start)}, result, nil
	}
	if cancelErr := cancellation(ctx, err); cancelErr != nil {
		return Outcome{Duration: time.Since(start), ErrorKind: ErrorKindCancelled}, nil, cancelErr
	}

	transient := handler.IsTransient(err)
	if d.debug {
		log.Printf("[dispatch] handler %s failed (transient=%v), trying fallback %s: %v", decision.HandlerID, transient, d.fallbackID, err)
	}

	fallbackResult, fallbackErr := d.execute(ctx, d.fallbackID, t)
	if fallbackErr == nil {
		annotated := fallbackResult.
			WithMetadata("fallback_from", decision.HandlerID).
			WithMetadata("primary_error", err.Error()).
			WithMetadata("primary_transient", strconv.FormatBool(transient))
		outcome := Outcome{
			Success:      true,
			Duration:     time.Since(start),
			ErrorKind:    ErrorKindHandlerExecution,
			FallbackUsed: true,
		}
		return outcome, annotated, nil
	}
	if cancelErr := cancellation(ctx, fallbackErr); cancelErr != nil {
		return Outcome{Duration: time.Since(start), ErrorKind: ErrorKindCancelled, FallbackUsed: true}, nil, cancelErr
	}

	outcome := Outcome{
		Duration:     time.Since(start),
		ErrorKind:    ErrorKindCompleteRoutingFailure,
		FallbackUsed: true,
	}
	return outcome, nil, &CompleteRoutingFailureError{
		HandlerID:   decision.HandlerID,
		FallbackID:  d.fallbackID,
		PrimaryErr:  err,
		FallbackErr: fallbackErr,
	}
}

func (d *Dispatcher) execute(ctx context.Context, handlerID string, t task.Task) (*task.Result, error) {
	reg, ok := d.registry.Get(handlerID)
	if !ok {
		return nil, fmt.Errorf("handler %s not registered", handlerID)
	}
	return reg.Handler.Execute(ctx, t)
}

// cancellation reports caller-initiated cancellation. The context error wins
// over whatever the handler returned.
func cancellation(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
