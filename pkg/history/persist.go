package history

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
)

// Journal persists routing records as JSON lines so statistics survive
// process restarts. The in-memory Store stays authoritative for the running
// process; the journal is append-only.
type Journal struct {
	path string
}

// NewJournal creates a journal rooted at basePath, defaulting to
// ~/.taskrouter when empty.
func NewJournal(basePath string) (*Journal, error) {
	if basePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		basePath = filepath.Join(home, ".taskrouter")
	}
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, err
	}
	return &Journal{path: filepath.Join(basePath, "history.jsonl")}, nil
}

// Path returns the journal file location.
func (j *Journal) Path() string {
	return j.path
}

// Append writes one record to the journal.
func (j *Journal) Append(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return err
	}
	return f.Sync()
}

// Load reads journaled records, oldest first. A missing journal yields an
// empty slice. Malformed lines are skipped rather than failing the read:
// a torn final write must not make history unreadable.
func (j *Journal) Load() ([]Record, error) {
	f, err := os.Open(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec Record
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Stats aggregates the journaled records.
func (j *Journal) Stats() (Stats, error) {
	records, err := j.Load()
	if err != nil {
		return Stats{}, err
	}
	return aggregate(records), nil
}
