package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/arqv/inkpad/pkg/core"
)

// debounceWindow coalesces bursts of filesystem events (editors and atomic
// renames frequently fire several per save).
const debounceWindow = 50 * time.Millisecond

// Watch observes external changes to the slot file and emits per-note
// events until ctx is cancelled. Events are derived by diffing the previous
// collection against the freshly-read one, so a whole-slot rewrite still
// yields one event per changed note. IDs are filtered with the doublestar
// pattern ("**" matches everything).
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "**"
	}
	if _, err := doublestar.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid watch pattern %q: %w", pattern, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory, not the file: atomic rename replaces the inode.
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	events := make(chan core.Event)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer watcher.Close()
		defer s.setWatcherActive(false)

		prev := s.snapshot(ctx)

		var pending *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return nil

			case evt, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(evt.Name) != filepath.Clean(s.path) {
					continue
				}
				if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) &&
					!evt.Has(fsnotify.Rename) && !evt.Has(fsnotify.Remove) {
					continue
				}
				if pending == nil {
					pending = time.NewTimer(debounceWindow)
					fire = pending.C
				} else {
					// Drain a fire that already landed, or the reset
					// timer's expiry would be consumed as stale.
					if !pending.Stop() {
						select {
						case <-pending.C:
						default:
						}
					}
					pending.Reset(debounceWindow)
				}

			case <-fire:
				pending = nil
				fire = nil
				next := s.snapshot(ctx)
				s.emitDiff(ctx, events, pattern, prev, next)
				prev = next

			case werr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if s.logger != nil {
					s.logger.Error("fsnotify error", "error", werr)
				}
			}
		}
	})

	return events, nil
}

// snapshot reads the current collection keyed by ID. Read errors degrade to
// an empty snapshot; the slot contract already treats corruption as empty.
func (s *Store) snapshot(ctx context.Context) map[string]core.Note {
	byID := make(map[string]core.Note)
	notes, err := s.ListAll(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("failed to snapshot slot for watch", "error", err)
		}
		return byID
	}
	for _, n := range notes {
		byID[n.ID] = n
	}
	return byID
}

// emitDiff turns a slot-level change into per-note events.
func (s *Store) emitDiff(ctx context.Context, out chan<- core.Event, pattern string, prev, next map[string]core.Note) {
	now := time.Now().Unix()

	send := func(t core.EventType, id string) {
		if ok, _ := doublestar.Match(pattern, id); !ok {
			return
		}
		select {
		case out <- core.Event{Type: t, ID: id, Timestamp: now}:
		case <-ctx.Done():
		}
	}

	for id, n := range next {
		old, existed := prev[id]
		switch {
		case !existed:
			send(core.EventCreate, id)
		case old.Title != n.Title || old.Content != n.Content:
			send(core.EventModify, id)
		}
	}
	for id := range prev {
		if _, still := next[id]; !still {
			send(core.EventDelete, id)
		}
	}
}

var _ core.Watchable = (*Store)(nil)
