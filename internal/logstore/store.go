// Package logstore persists alert records as a single human-inspectable JSON
// array. Every append rewrites the whole file; volume is low enough that the
// simplicity wins over an incremental format.
package logstore

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"go-modwatch/internal/models"
)

type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Append reads the current array, stamps rec, and writes the array back.
// A missing or unreadable file starts a fresh sequence. discordgo runs each
// handler on its own goroutine, so the read-modify-write cycle is held under
// the mutex to keep concurrent appends from losing writes.
func (s *Store) Append(rec models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.readLocked()

	rec.TS = time.Now().UTC().Format(time.RFC3339)
	records = append(records, rec)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// ReadAll returns the persisted sequence, empty when the file is missing or
// does not parse.
func (s *Store) ReadAll() []models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

func (s *Store) readLocked() []models.Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}
	return records
}
