// Package file implements core.LocalStore on a single JSON slot file.
//
// The whole collection is serialized as one document and rewritten
// atomically on every mutation; there are no partial writes. A missing or
// corrupt slot is treated as an empty collection so the store can always
// self-heal.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/arqv/inkpad/pkg/core"
)

// SlotName is the default filename of the notes slot.
const SlotName = "notes.json"

// Store is a durable local note store backed by one slot file.
type Store struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger

	watcherActive bool
}

// Config holds the configuration for the file store.
type Config struct {
	Path   string // full path to the slot file
	Logger *slog.Logger
}

// NewStore creates a store over the given slot file. The parent directory
// is created on the first write, not here.
func NewStore(cfg Config) *Store {
	return &Store{
		path:   cfg.Path,
		logger: cfg.Logger,
	}
}

// Path returns the slot file location.
func (s *Store) Path() string {
	return s.path
}

// ListAll returns the stored collection. A missing slot or malformed data
// yields an empty collection; corruption is recovered silently, never
// surfaced to the user.
func (s *Store) ListAll(ctx context.Context) ([]core.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

func (s *Store) readLocked() ([]core.Note, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %s: %w", s.path, err)
	}

	var notes []core.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		// Corrupt slot: treat as empty and let the next write self-heal.
		if s.logger != nil {
			s.logger.Warn("malformed local collection, treating as empty",
				"path", s.path, "error", err)
		}
		return nil, nil
	}
	return notes, nil
}

func (s *Store) writeLocked(notes []core.Note) error {
	if notes == nil {
		notes = []core.Note{}
	}

	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := writeFileAtomic(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write slot: %w", err)
	}
	return nil
}

// Upsert replaces the record with matching ID or appends it, then rewrites
// the collection. It returns the updated collection.
func (s *Store) Upsert(ctx context.Context, n core.Note) ([]core.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.readLocked()
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range notes {
		if notes[i].ID == n.ID {
			notes[i] = n
			replaced = true
			break
		}
	}
	if !replaced {
		notes = append(notes, n)
	}

	if err := s.writeLocked(notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Remove filters the record out and rewrites the collection. Removing an
// absent ID is a no-op. It returns the updated collection.
func (s *Store) Remove(ctx context.Context, id string) ([]core.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.readLocked()
	if err != nil {
		return nil, err
	}

	kept := notes[:0]
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}

	if err := s.writeLocked(kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string `json:"path"`
	SlotExists    bool   `json:"slot_exists"`
	NoteCount     int    `json:"note_count"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := StoreState{
		Path:          s.path,
		WatcherActive: s.watcherActive,
	}
	if notes, err := s.readLocked(); err == nil {
		state.NoteCount = len(notes)
	}
	if _, err := os.Stat(s.path); err == nil {
		state.SlotExists = true
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "local-store"
}

var _ core.LocalStore = (*Store)(nil)
var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
