// Package storage persists the meeting collection as a JSON file. The
// collection is read once at startup and rewritten after every mutation;
// there is exactly one logical writer, so no locking is needed.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/torisaki/mtg/internal/core"
)

// Store reads and writes one meeting collection file.
type Store struct {
	path string
}

// New returns a store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the collection. A missing file is an empty collection, not an
// error. A present but unparseable file returns the error so the caller
// can report it and fall back to empty.
func (s *Store) Load() ([]core.Meeting, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var meetings []core.Meeting
	if err := json.Unmarshal(data, &meetings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return meetings, nil
}

// Save rewrites the whole collection. The parent directory is created on
// first write, and the file lands via a temp-file rename so a crash never
// leaves a half-written collection.
func (s *Store) Save(meetings []core.Meeting) error {
	if meetings == nil {
		meetings = []core.Meeting{}
	}
	data, err := json.MarshalIndent(meetings, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".meetings-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	// CreateTemp opens 0600; match the mode the export commands use
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
