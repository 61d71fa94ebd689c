// Package store persists the whole event collection as a single JSON
// document on disk. Every save replaces the entire file; there is no
// incremental or per-event persistence.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"eventman/internal/event"
)

// Store reads and writes the event collection at a fixed path.
type Store struct {
	path string
}

// document is the on-disk shape. Wrapping the slice leaves room for a
// version field without breaking existing files.
type document struct {
	Events []event.Event `json:"events"`
}

// New returns a store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the entire persisted event set. A missing file is a fresh
// start and returns no error. A file that cannot be read or decoded
// returns the error; the caller reports it and begins empty.
func (s *Store) Load() ([]event.Event, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return doc.Events, nil
}

// Save atomically replaces the persisted set with events. The document
// is written to a temp file first and renamed into place so a crash
// mid-write leaves the previous save intact.
func (s *Store) Save(events []event.Event) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(document{Events: events}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
