package core

import "context"

// RemoteBackend defines the contract for the server-backed storage mode.
// Implementations perform one network round trip per call, no retries;
// any failure makes the repository degrade to local-only for the session.
type RemoteBackend interface {
	// List returns the canonical server-side collection.
	List(ctx context.Context) ([]Note, error)

	// Create registers a new note and returns the server's version of it,
	// including the identifier the server assigned.
	Create(ctx context.Context, n Note) (Note, error)

	// Update replaces the note with matching ID.
	Update(ctx context.Context, n Note) error

	// Delete removes a note by its ID.
	Delete(ctx context.Context, id string) error
}

// LocalStore defines the contract for the durable local storage mode.
// The whole collection is read and rewritten as a unit; mutating calls
// return the updated collection so callers can refresh their working set
// without a second read.
type LocalStore interface {
	// ListAll returns the stored collection. A missing or malformed slot
	// is an empty collection, never an error.
	ListAll(ctx context.Context) ([]Note, error)

	// Upsert replaces the record with matching ID, or appends it, then
	// rewrites the collection atomically.
	Upsert(ctx context.Context, n Note) ([]Note, error)

	// Remove filters the record out and rewrites the collection.
	Remove(ctx context.Context, id string) ([]Note, error)
}

// Watchable is implemented by stores that can observe external changes
// to their backing slot.
type Watchable interface {
	// Watch emits events for notes whose IDs match the glob pattern until
	// ctx is cancelled.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
