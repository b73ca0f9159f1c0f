package handler

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// HandlerError wraps provider errors with status metadata.
type HandlerError struct {
	Status    int
	Temporary bool
	Err       error
}

func (e *HandlerError) Error() string {
	if e == nil {
		return "handler error"
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("handler error (status=%d)", e.Status)
}

func (e *HandlerError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsTransient reports whether an execution error is safe to retry.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		if handlerErr.Temporary {
			return true
		}
		if handlerErr.Status == 429 || (handlerErr.Status >= 500 && handlerErr.Status <= 599) {
			return true
		}
	}
	return false
}
