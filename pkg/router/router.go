// Package router composes analysis, scoring, selection, and dispatch into
// the capability routing engine.
package router

import (
	"context"
	"log"

	"github.com/zen-systems/taskrouter/pkg/analyzer"
	"github.com/zen-systems/taskrouter/pkg/config"
	"github.com/zen-systems/taskrouter/pkg/history"
	"github.com/zen-systems/taskrouter/pkg/registry"
	"github.com/zen-systems/taskrouter/pkg/scoring"
	"github.com/zen-systems/taskrouter/pkg/task"
)

// Router is the single entry point callers use: Route, Decide, Stats,
// HealthCheck. Analysis, scoring, and selection are pure; the history store
// is the only shared mutable state.
type Router struct {
	registry   *registry.Registry
	analyzer   *analyzer.Analyzer
	scorer     *scoring.Engine
	dispatcher *Dispatcher
	history    *history.Store
	journal    *history.Journal
	debug      bool
}

// Option configures a Router.
type Option func(*Router)

// WithDebug enables debug logging.
func WithDebug(debug bool) Option {
	return func(r *Router) {
		r.debug = debug
		r.dispatcher.debug = debug
	}
}

// WithHistory sets the history store, replacing the default-capacity one.
func WithHistory(store *history.Store) Option {
	return func(r *Router) {
		r.history = store
	}
}

// WithJournal additionally persists every routing record to the journal.
func WithJournal(journal *history.Journal) Option {
	return func(r *Router) {
		r.journal = journal
	}
}

// New creates a router over the given registry and tables.
func New(reg *registry.Registry, cfg *config.RouterConfig, opts ...Option) *Router {
	r := &Router{
		registry:   reg,
		analyzer:   analyzer.New(cfg),
		scorer:     scoring.New(cfg),
		dispatcher: NewDispatcher(reg, cfg.FallbackHandler),
		history:    history.NewStore(cfg.HistoryCapacity),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Decide analyzes the text and selects a handler without dispatching.
// Returns ErrEmptyRegistry when no handlers are registered.
func (r *Router) Decide(text string) (*Decision, error) {
	registrations := r.registry.List()
	if len(registrations) == 0 {
		return nil, ErrEmptyRegistry
	}

	profile := r.analyzer.Analyze(text)
	if r.debug {
		log.Printf("[router] profile: types=%v domains=%v complexity=%s urgency=%s",
			profile.TaskTypes, profile.Domains, profile.Complexity, profile.Urgency)
	}

	scores := make([]scoring.Score, 0, len(registrations))
	for _, reg := range registrations {
		scores = append(scores, r.scorer.Score(profile, reg.Descriptor))
	}

	return Select(scores, profile)
}

// Route analyzes the text, selects a handler, dispatches the task, and
// records the outcome. The returned error is non-nil only for an empty
// registry, a complete routing failure, or caller cancellation; a primary
// failure recovered by the fallback is reported via the outcome alone.
func (r *Router) Route(ctx context.Context, text string, t task.Task) (*Decision, Outcome, *task.Result, error) {
	decision, err := r.Decide(text)
	if err != nil {
		// No decision was made; nothing to record.
		return nil, Outcome{ErrorKind: ErrorKindEmptyRegistry}, nil, err
	}

	outcome, result, dispatchErr := r.dispatcher.Dispatch(ctx, decision, t)

	rec := history.Record{
		DecisionID:   decision.ID,
		HandlerID:    decision.HandlerID,
		TaskType:     decision.Profile.Primary(),
		Confidence:   decision.Confidence,
		Success:      outcome.Success,
		FallbackUsed: outcome.FallbackUsed,
		ErrorKind:    string(outcome.ErrorKind),
		Duration:     outcome.Duration,
		Timestamp:    decision.Timestamp,
	}
	r.history.Append(rec)
	if r.journal != nil {
		if err := r.journal.Append(rec); err != nil && r.debug {
			log.Printf("[router] journal append failed: %v", err)
		}
	}

	return decision, outcome, result, dispatchErr
}

// Stats returns aggregate statistics over the routing history.
func (r *Router) Stats() history.Stats {
	return r.history.Stats()
}

// History returns the router's history store.
func (r *Router) History() *history.Store {
	return r.history
}
