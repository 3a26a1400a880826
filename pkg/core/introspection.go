package core

import (
	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Mode        string `json:"mode"` // "remote" or "local"
	NoteCount   int    `json:"note_count"`
	Unconfirmed int    `json:"unconfirmed"` // notes never acknowledged by the remote store
	Subscribers int    `json:"subscribers"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.Lock()
	defer r.mu.Unlock()

	mode := "local"
	if r.remoteEnabled {
		mode = "remote"
	}

	unconfirmed := 0
	for _, n := range r.notes {
		if !n.persisted {
			unconfirmed++
		}
	}

	return RepositoryState{
		Mode:        mode,
		NoteCount:   len(r.notes),
		Unconfirmed: unconfirmed,
		Subscribers: r.broker.Len(),
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "repository"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)

// SessionState exposes internal state for observability.
type SessionState struct {
	ActiveID       string `json:"active_id,omitempty"`
	PendingPersist bool   `json:"pending_persist"`
	Filter         string `json:"filter,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Session) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := SessionState{
		PendingPersist: s.timer != nil,
		Filter:         s.filter,
	}
	if s.active != nil {
		state.ActiveID = s.active.ID
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Session) ComponentType() string {
	return "session"
}

var _ introspection.Introspectable = (*Session)(nil)
var _ introspection.Component = (*Session)(nil)
