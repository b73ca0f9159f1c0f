package history

import (
	"fmt"
	"sync"
	"testing"
)

func TestStoreAppendAndSnapshot(t *testing.T) {
	store := NewStore(10)

	for i := 0; i < 3; i++ {
		store.Append(Record{DecisionID: fmt.Sprintf("d%d", i), HandlerID: "backend"})
	}

	if store.Len() != 3 {
		t.Fatalf("Len = %d, want 3", store.Len())
	}
	snapshot := store.Snapshot()
	for i, rec := range snapshot {
		if rec.DecisionID != fmt.Sprintf("d%d", i) {
			t.Errorf("snapshot[%d] = %s, want d%d", i, rec.DecisionID, i)
		}
	}
}

func TestStoreEvictsOldest(t *testing.T) {
	store := NewStore(100)

	for i := 0; i < 150; i++ {
		store.Append(Record{DecisionID: fmt.Sprintf("d%d", i)})
	}

	if store.Len() != 100 {
		t.Fatalf("Len = %d, want 100", store.Len())
	}
	snapshot := store.Snapshot()
	if snapshot[0].DecisionID != "d50" {
		t.Errorf("oldest record = %s, want d50", snapshot[0].DecisionID)
	}
	if snapshot[99].DecisionID != "d149" {
		t.Errorf("newest record = %s, want d149", snapshot[99].DecisionID)
	}
}

func TestStoreDefaultCapacity(t *testing.T) {
	for _, capacity := range []int{0, -5} {
		store := NewStore(capacity)
		if store.Capacity() != DefaultCapacity {
			t.Errorf("NewStore(%d) capacity = %d, want %d", capacity, store.Capacity(), DefaultCapacity)
		}
	}
}

func TestStoreConcurrentAppends(t *testing.T) {
	store := NewStore(50)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				store.Append(Record{HandlerID: fmt.Sprintf("h%d", worker), Success: true})
			}
		}(i)
	}
	wg.Wait()

	if store.Len() != 50 {
		t.Fatalf("Len = %d, want 50", store.Len())
	}
	stats := store.Stats()
	if stats.TotalRoutes != 50 || stats.Successes != 50 {
		t.Errorf("stats = %+v, want 50 routes all successful", stats)
	}
}

func TestStatsAggregation(t *testing.T) {
	store := NewStore(10)
	store.Append(Record{HandlerID: "frontend", Confidence: 0.9, Success: true})
	store.Append(Record{HandlerID: "frontend", Confidence: 0.7, Success: true, FallbackUsed: true})
	store.Append(Record{HandlerID: "backend", Confidence: 0.5, Success: false})
	store.Append(Record{HandlerID: "docs", Confidence: 0.3, Success: true})

	stats := store.Stats()
	if stats.TotalRoutes != 4 {
		t.Errorf("total = %d, want 4", stats.TotalRoutes)
	}
	if stats.Successes != 3 {
		t.Errorf("successes = %d, want 3", stats.Successes)
	}
	if stats.SuccessRate != 0.75 {
		t.Errorf("success rate = %.2f, want 0.75", stats.SuccessRate)
	}
	if stats.FallbackCount != 1 {
		t.Errorf("fallback count = %d, want 1", stats.FallbackCount)
	}
	if got := stats.AverageConfidence; got < 0.599 || got > 0.601 {
		t.Errorf("average confidence = %.3f, want 0.6", got)
	}
	if stats.UsagePerHandler["frontend"] != 2 || stats.UsagePerHandler["backend"] != 1 {
		t.Errorf("usage = %v", stats.UsagePerHandler)
	}
}

func TestStatsEmptyStore(t *testing.T) {
	stats := NewStore(10).Stats()
	if stats.TotalRoutes != 0 || stats.SuccessRate != 0 || stats.AverageConfidence != 0 {
		t.Errorf("empty stats = %+v, want zeros", stats)
	}
}
