// Package core holds the domain model and the orchestration logic of the
// note store. It is agnostic to the backing storage: adapters plug in via
// the RemoteBackend and LocalStore ports.
package core

import (
	"strconv"
	"strings"
	"time"
)

// DefaultTitle is assigned to notes saved with an empty title.
const DefaultTitle = "Untitled"

// Note is the central entity of the domain: the durable unit of the store.
type Note struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  string `json:"user_id,omitempty"`

	// persisted marks whether the remote store has confirmed this note.
	// It drives the create-vs-update decision on the next persist and is
	// deliberately unexported so it never reaches a serialized collection.
	persisted bool
}

// NewNote builds an in-memory note with a client-generated ID.
// The ID is the current Unix time in milliseconds; the remote store
// replaces it with its own identifier on the first successful create.
func NewNote(title, content string) *Note {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	return &Note{
		ID:      strconv.FormatInt(time.Now().UnixMilli(), 10),
		Title:   title,
		Content: content,
	}
}

// Persisted reports whether the remote store has confirmed this note.
func (n *Note) Persisted() bool {
	return n.persisted
}

// EventType represents the kind of change observed in the store.
type EventType string

const (
	// Per-note changes, emitted by watch workers observing the backing store.
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"

	// View-level changes, emitted by the repository and the editor session
	// for rendering collaborators.
	EventListChanged   EventType = "LIST_CHANGED"
	EventSearchChanged EventType = "SEARCH_CHANGED"
	EventActiveChanged EventType = "ACTIVE_CHANGED"
)

// Event represents a change in the note store.
type Event struct {
	Type      EventType
	ID        string // affected note ID, empty for pure view-level events
	Timestamp int64  // Unix timestamp
}

// String renders the event for logs and generic event sinks.
func (e Event) String() string {
	if e.ID == "" {
		return string(e.Type)
	}
	return string(e.Type) + " " + e.ID
}
