// Package history keeps a bounded, concurrency-safe record of routing
// decisions and their outcomes.
package history

import (
	"sync"
	"time"
)

// DefaultCapacity is the ring size used when none is configured.
const DefaultCapacity = 100

// Record is one completed dispatch: the decision essentials plus the
// observed outcome. Records are appended in completion order.
type Record struct {
	DecisionID   string        `json:"decision_id"`
	HandlerID    string        `json:"handler_id"`
	TaskType     string        `json:"task_type"`
	Confidence   float64       `json:"confidence"`
	Success      bool          `json:"success"`
	FallbackUsed bool          `json:"fallback_used"`
	ErrorKind    string        `json:"error_kind,omitempty"`
	Duration     time.Duration `json:"duration"`
	Timestamp    time.Time     `json:"timestamp"`
}

// Store is a fixed-capacity FIFO ring buffer. Append beyond capacity evicts
// the oldest record atomically with the insert. All operations are guarded
// by one mutex so snapshots always observe a consistent state.
type Store struct {
	mu      sync.Mutex
	records []Record
	head    int
	size    int
}

// NewStore creates a store with the given capacity. Non-positive capacities
// fall back to DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{records: make([]Record, capacity)}
}

// Append adds a record, evicting the oldest if the buffer is full.
func (s *Store) Append(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := (s.head + s.size) % len(s.records)
	s.records[idx] = rec
	if s.size < len(s.records) {
		s.size++
	} else {
		s.head = (s.head + 1) % len(s.records)
	}
}

// Snapshot returns a copy of the stored records, oldest first.
func (s *Store) Snapshot() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, s.size)
	for i := 0; i < s.size; i++ {
		out[i] = s.records[(s.head+i)%len(s.records)]
	}
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Capacity returns the fixed buffer capacity.
func (s *Store) Capacity() int {
	return len(s.records)
}
