package history

import (
	"os"
	"testing"
)

func TestJournalAppendAndLoad(t *testing.T) {
	journal, err := NewJournal(t.TempDir())
	if err != nil {
		t.Fatalf("NewJournal: %v", err)
	}

	for _, rec := range []Record{
		{DecisionID: "d1", HandlerID: "frontend", Confidence: 0.9, Success: true},
		{DecisionID: "d2", HandlerID: "backend", Confidence: 0.4, Success: false},
	} {
		if err := journal.Append(rec); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	records, err := journal.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].DecisionID != "d1" || records[1].DecisionID != "d2" {
		t.Errorf("records out of order: %v", records)
	}

	stats, err := journal.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalRoutes != 2 || stats.Successes != 1 {
		t.Errorf("stats = %+v, want 2 routes 1 success", stats)
	}
}

func TestJournalLoadMissingFile(t *testing.T) {
	journal, err := NewJournal(t.TempDir())
	if err != nil {
		t.Fatalf("NewJournal: %v", err)
	}

	records, err := journal.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records from missing journal, want 0", len(records))
	}
}

func TestJournalSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	journal, err := NewJournal(dir)
	if err != nil {
		t.Fatalf("NewJournal: %v", err)
	}

	if err := journal.Append(Record{DecisionID: "good"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	// Simulate a torn write at the end of the file.
	f, err := os.OpenFile(journal.Path(), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString(`{"decision_id": "torn`); err != nil {
		t.Fatal(err)
	}
	f.Close()

	records, err := journal.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 1 || records[0].DecisionID != "good" {
		t.Errorf("records = %v, want only the well-formed one", records)
	}
}
