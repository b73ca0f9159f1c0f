package router

import (
	"context"
	"errors"
	"testing"

	"github.com/zen-systems/taskrouter/pkg/handler"
	"github.com/zen-systems/taskrouter/pkg/registry"
	"github.com/zen-systems/taskrouter/pkg/task"
)

func newDispatchFixture(primary, fallback handler.Handler) *Dispatcher {
	reg := registry.New()
	reg.Register(handler.Descriptor{ID: "primary"}, primary)
	reg.Register(handler.Descriptor{ID: "generalist"}, fallback)
	return NewDispatcher(reg, "generalist")
}

func TestDispatchPrimarySuccess(t *testing.T) {
	primary := handler.NewMockHandler("primary")
	fallback := handler.NewMockHandler("generalist")
	d := newDispatchFixture(primary, fallback)

	decision := &Decision{HandlerID: "primary"}
	outcome, result, err := d.Dispatch(context.Background(), decision, task.New("do the thing"))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !outcome.Success || outcome.FallbackUsed {
		t.Errorf("outcome = %+v, want success without fallback", outcome)
	}
	if result.Handler != "primary" {
		t.Errorf("result handler = %s, want primary", result.Handler)
	}
	if fallback.Calls() != 0 {
		t.Errorf("fallback invoked %d times, want 0", fallback.Calls())
	}
}

func TestDispatchFallbackOnPrimaryFailure(t *testing.T) {
	primaryErr := errors.New("model overloaded")
	primary := handler.NewFailingMockHandler("primary", primaryErr)
	fallback := handler.NewMockHandler("generalist")
	d := newDispatchFixture(primary, fallback)

	decision := &Decision{HandlerID: "primary"}
	outcome, result, err := d.Dispatch(context.Background(), decision, task.New("do the thing"))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !outcome.Success || !outcome.FallbackUsed {
		t.Errorf("outcome = %+v, want success via fallback", outcome)
	}
	if result.Handler != "generalist" {
		t.Errorf("result handler = %s, want generalist", result.Handler)
	}
	if result.Metadata["fallback_from"] != "primary" {
		t.Errorf("fallback_from = %q, want primary", result.Metadata["fallback_from"])
	}
	if result.Metadata["primary_error"] != primaryErr.Error() {
		t.Errorf("primary_error = %q, want %q", result.Metadata["primary_error"], primaryErr.Error())
	}
	if result.Metadata["primary_transient"] != "false" {
		t.Errorf("primary_transient = %q, want false", result.Metadata["primary_transient"])
	}
	if outcome.ErrorKind != ErrorKindHandlerExecution {
		t.Errorf("error kind = %s, want %s", outcome.ErrorKind, ErrorKindHandlerExecution)
	}
}

func TestDispatchFallbackMarksTransientPrimaryError(t *testing.T) {
	primary := handler.NewFailingMockHandler("primary", &handler.HandlerError{Status: 503})
	fallback := handler.NewMockHandler("generalist")
	d := newDispatchFixture(primary, fallback)

	decision := &Decision{HandlerID: "primary"}
	_, result, err := d.Dispatch(context.Background(), decision, task.New("do the thing"))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if result.Metadata["primary_transient"] != "true" {
		t.Errorf("primary_transient = %q, want true", result.Metadata["primary_transient"])
	}
}

func TestDispatchCompleteRoutingFailure(t *testing.T) {
	primaryErr := errors.New("primary down")
	fallbackErr := errors.New("fallback down")
	d := newDispatchFixture(
		handler.NewFailingMockHandler("primary", primaryErr),
		handler.NewFailingMockHandler("generalist", fallbackErr),
	)

	decision := &Decision{HandlerID: "primary"}
	outcome, result, err := d.Dispatch(context.Background(), decision, task.New("do the thing"))
	if result != nil {
		t.Errorf("expected nil result, got %+v", result)
	}
	if outcome.Success {
		t.Error("outcome reports success on total failure")
	}
	if outcome.ErrorKind != ErrorKindCompleteRoutingFailure {
		t.Errorf("error kind = %s, want %s", outcome.ErrorKind, ErrorKindCompleteRoutingFailure)
	}

	var failure *CompleteRoutingFailureError
	if !errors.As(err, &failure) {
		t.Fatalf("error type = %T, want CompleteRoutingFailureError", err)
	}
	if !errors.Is(failure.PrimaryErr, primaryErr) || !errors.Is(failure.FallbackErr, fallbackErr) {
		t.Errorf("failure does not preserve both errors: %v", failure)
	}
	if !errors.Is(err, primaryErr) {
		t.Error("primary error not reachable via errors.Is")
	}
}

func TestDispatchCancellationSkipsFallback(t *testing.T) {
	primary := handler.NewMockHandler("primary")
	fallback := handler.NewMockHandler("generalist")
	d := newDispatchFixture(primary, fallback)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	decision := &Decision{HandlerID: "primary"}
	outcome, result, err := d.Dispatch(ctx, decision, task.New("do the thing"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if result != nil {
		t.Errorf("expected nil result, got %+v", result)
	}
	if outcome.ErrorKind != ErrorKindCancelled {
		t.Errorf("error kind = %s, want %s", outcome.ErrorKind, ErrorKindCancelled)
	}
	if outcome.FallbackUsed {
		t.Error("cancellation must not trigger fallback")
	}
	if fallback.Calls() != 0 {
		t.Errorf("fallback invoked %d times, want 0", fallback.Calls())
	}
}

func TestDispatchWrappedCancellationSkipsFallback(t *testing.T) {
	// Handler reports a deadline error of its own; the context itself is
	// still live. Fallback must not run.
	wrapped := &handler.HandlerError{Status: 0, Temporary: false, Err: context.DeadlineExceeded}
	primary := handler.NewFailingMockHandler("primary", wrapped)
	fallback := handler.NewMockHandler("generalist")
	d := newDispatchFixture(primary, fallback)

	decision := &Decision{HandlerID: "primary"}
	outcome, _, err := d.Dispatch(context.Background(), decision, task.New("do the thing"))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("got %v, want context.DeadlineExceeded", err)
	}
	if outcome.ErrorKind != ErrorKindCancelled {
		t.Errorf("error kind = %s, want %s", outcome.ErrorKind, ErrorKindCancelled)
	}
	if fallback.Calls() != 0 {
		t.Errorf("fallback invoked %d times, want 0", fallback.Calls())
	}
}
