package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Repository orchestrates the two backing modes of the note store.
//
// It owns the in-memory working set and decides, per operation, whether the
// remote API or the durable local store is active. Any remote failure
// degrades the whole session to local-only; degradation is one-directional,
// there is no recovery probe. This trades availability (the user is never
// blocked) for simplicity (no queued retries, no conflict reconciliation).
type Repository struct {
	mu            sync.Mutex
	remote        RemoteBackend // nil when no credential was present at startup
	local         LocalStore
	remoteEnabled bool
	notes         []*Note
	broker        *Broker
	logger        *slog.Logger
}

// RepositoryConfig holds the dependencies of a Repository.
type RepositoryConfig struct {
	Remote      RemoteBackend // optional; nil starts the session local-only
	Local       LocalStore
	Logger      *slog.Logger
	EventBuffer int
}

// NewRepository wires a repository. Remote mode is enabled iff a remote
// backend is provided; the caller resolves the credential question before
// construction.
func NewRepository(cfg RepositoryConfig) *Repository {
	return &Repository{
		remote:        cfg.Remote,
		local:         cfg.Local,
		remoteEnabled: cfg.Remote != nil,
		broker:        NewBroker(cfg.EventBuffer),
		logger:        cfg.Logger,
	}
}

// Load replaces the working set wholesale from the active backing store.
//
// It is called at startup and after every successful remote mutation:
// mutations do not trust their own optimistic result as final, they
// re-derive canonical server state.
func (r *Repository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked(ctx)
}

func (r *Repository) loadLocked(ctx context.Context) error {
	if r.remoteEnabled {
		remote, err := r.remote.List(ctx)
		if err == nil {
			r.replaceLocked(remote, true)
			return nil
		}
		r.degradeLocked("load", err)
	}

	local, err := r.local.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to read local store: %w", err)
	}
	r.replaceLocked(local, false)
	return nil
}

// replaceLocked swaps the working set for a fresh collection.
// Notes read back from the remote store are confirmed by definition.
func (r *Repository) replaceLocked(notes []Note, persisted bool) {
	next := make([]*Note, 0, len(notes))
	for i := range notes {
		n := notes[i]
		n.persisted = persisted
		next = append(next, &n)
	}
	r.notes = next
	r.broker.Publish(Event{Type: EventListChanged})
}

// Create inserts a note at the head of the working set (optimistic).
// In local mode the full collection is written out immediately; in remote
// mode the caller is expected to follow up with Persist.
func (r *Repository) Create(ctx context.Context, n *Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n.persisted = false
	r.notes = append([]*Note{n}, r.notes...)

	if !r.remoteEnabled {
		if _, err := r.local.Upsert(ctx, *n); err != nil {
			return fmt.Errorf("failed to write local store: %w", err)
		}
	}

	r.broker.Publish(Event{Type: EventListChanged, ID: n.ID})
	return nil
}

// Persist writes a note to the active backing store.
//
// An unconfirmed note is POSTed exactly once and adopts the identifier the
// server assigned; a confirmed note is PUT by ID. Either success triggers a
// full reload. A remote failure degrades the session and falls through to
// the local store, where the note keeps its client-generated ID.
func (r *Repository) Persist(ctx context.Context, n *Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(n.Title) == "" {
		n.Title = DefaultTitle
	}

	if r.remoteEnabled {
		if !n.persisted {
			created, err := r.remote.Create(ctx, *n)
			if err == nil {
				// Adopt the server's identity and fields.
				n.ID = created.ID
				n.Title = created.Title
				n.Content = created.Content
				n.UserID = created.UserID
				n.persisted = true
				return r.loadLocked(ctx)
			}
			r.degradeLocked("create", err)
		} else {
			err := r.remote.Update(ctx, *n)
			if err == nil {
				return r.loadLocked(ctx)
			}
			r.degradeLocked("update", err)
		}
	}

	coll, err := r.local.Upsert(ctx, *n)
	if err != nil {
		return fmt.Errorf("failed to write local store: %w", err)
	}
	// The store's return value is the collection; take it as-is rather
	// than patching the working set field by field.
	r.replaceLocked(coll, false)
	return nil
}

// Delete removes a note from the working set and the active backing store.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.remoteEnabled {
		err := r.remote.Delete(ctx, id)
		if err == nil {
			return r.loadLocked(ctx)
		}
		r.degradeLocked("delete", err)
	}

	kept := r.notes[:0]
	for _, n := range r.notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	r.notes = kept

	if _, err := r.local.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to rewrite local store: %w", err)
	}

	r.broker.Publish(Event{Type: EventListChanged, ID: id})
	return nil
}

// degradeLocked flips the session to local-only mode. Monotonic: once
// degraded, the session stays degraded.
func (r *Repository) degradeLocked(op string, err error) {
	r.remoteEnabled = false
	if r.logger != nil {
		r.logger.Warn("remote store unavailable, degrading to local-only mode",
			"op", op, "error", err)
	}
}

// Amend runs fn against a note under the repository lock. Note fields are
// guarded by this lock: Persist reads them here, so collaborators that
// write a shared *Note must come through Amend rather than mutate directly.
func (r *Repository) Amend(n *Note, fn func(*Note)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(n)
}

// Notes returns a snapshot of the working set, most recent first.
func (r *Repository) Notes() []*Note {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]*Note, len(r.notes))
	copy(snapshot, r.notes)
	return snapshot
}

// Find returns the note with the given ID, or nil.
// The returned pointer is shared: edits through it mutate the working set.
func (r *Repository) Find(id string) *Note {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// RemoteEnabled reports whether the session is still server-backed.
func (r *Repository) RemoteEnabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remoteEnabled
}

// Broker exposes the event fan-out for rendering collaborators.
func (r *Repository) Broker() *Broker {
	return r.broker
}

// Subscribe registers a listener for store events.
func (r *Repository) Subscribe() (string, <-chan Event) {
	return r.broker.Subscribe()
}

// Unsubscribe removes a listener.
func (r *Repository) Unsubscribe(id string) {
	r.broker.Unsubscribe(id)
}
