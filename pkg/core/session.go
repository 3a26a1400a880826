package core

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultAutosaveDelay is the debounce window for edits.
const DefaultAutosaveDelay = 700 * time.Millisecond

// Field names an editable note field.
type Field string

const (
	FieldTitle   Field = "title"
	FieldContent Field = "content"
)

// Session tracks the currently-edited note and debounces its autosave.
//
// The active note is a shared pointer into the repository's working set:
// edits mutate the object directly, there is no clone. The debounce timer
// is single-flight: a new edit inside the window cancels and restarts it,
// so at most one persist is pending at a time and it carries the latest
// field values when it fires.
type Session struct {
	mu     sync.Mutex
	repo   *Repository
	active *Note
	delay  time.Duration
	timer  *time.Timer
	filter string
	logger *slog.Logger
}

// SessionConfig holds the dependencies of a Session.
type SessionConfig struct {
	Repo          *Repository
	AutosaveDelay time.Duration // zero means DefaultAutosaveDelay
	Logger        *slog.Logger
}

// NewSession creates an editor session over the given repository.
func NewSession(cfg SessionConfig) *Session {
	delay := cfg.AutosaveDelay
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	return &Session{
		repo:   cfg.Repo,
		delay:  delay,
		logger: cfg.Logger,
	}
}

// Select makes the note with the given ID active. Selecting an unknown ID
// is a no-op.
func (s *Session) Select(id string) {
	n := s.repo.Find(id)
	if n == nil {
		if s.logger != nil {
			s.logger.Debug("select ignored, note not found", "id", id)
		}
		return
	}

	s.mu.Lock()
	s.active = n
	s.mu.Unlock()

	s.repo.Broker().Publish(Event{Type: EventActiveChanged, ID: id})
}

// Create builds a new note, inserts it into the repository, and makes it
// active. In remote mode the note stays unconfirmed until the first persist.
func (s *Session) Create(ctx context.Context, title, content string) (*Note, error) {
	n := NewNote(title, content)
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.active = n
	s.mu.Unlock()

	s.repo.Broker().Publish(Event{Type: EventActiveChanged, ID: n.ID})
	return n, nil
}

// Edit mutates a field of the active note in place and (re)arms the
// debounced autosave. The write goes through the repository lock so it can
// never interleave with an autosave persist reading the same object.
func (s *Session) Edit(field Field, value string) error {
	s.mu.Lock()
	n := s.active
	s.mu.Unlock()

	if n == nil {
		return ErrNoActiveNote
	}

	switch field {
	case FieldTitle:
		s.repo.Amend(n, func(n *Note) { n.Title = value })
	case FieldContent:
		s.repo.Amend(n, func(n *Note) { n.Content = value })
	default:
		return ErrUnknownField
	}

	s.mu.Lock()
	s.scheduleLocked()
	s.mu.Unlock()
	return nil
}

// scheduleLocked restarts the single-flight autosave timer.
func (s *Session) scheduleLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.autosave)
}

// autosave is the debounce timer callback.
func (s *Session) autosave() {
	s.mu.Lock()
	s.timer = nil
	n := s.active
	s.mu.Unlock()

	if n == nil {
		return
	}
	if err := s.repo.Persist(context.Background(), n); err != nil {
		if s.logger != nil {
			s.logger.Error("autosave failed", "id", n.ID, "error", err)
		}
	}
}

// Save persists the active note immediately, bypassing the debounce.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	n := s.active
	s.mu.Unlock()

	if n == nil {
		return ErrNoActiveNote
	}
	return s.repo.Persist(ctx, n)
}

// Delete removes the active note and clears the selection. Confirmation is
// the calling context's responsibility; this method does not prompt.
func (s *Session) Delete(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	n := s.active
	s.mu.Unlock()

	if n == nil {
		return ErrNoActiveNote
	}
	if err := s.repo.Delete(ctx, n.ID); err != nil {
		return err
	}

	s.mu.Lock()
	s.active = nil
	s.mu.Unlock()

	s.repo.Broker().Publish(Event{Type: EventActiveChanged})
	return nil
}

// Repo exposes the underlying repository.
func (s *Session) Repo() *Repository {
	return s.repo
}

// Active returns the currently selected note, or nil.
func (s *Session) Active() *Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// SetFilter updates the live search term and returns the filtered view.
func (s *Session) SetFilter(term string) []*Note {
	s.mu.Lock()
	s.filter = term
	s.mu.Unlock()

	results := Filter(term, s.repo.Notes())
	s.repo.Broker().Publish(Event{Type: EventSearchChanged})
	return results
}

// Filter returns the current search term.
func (s *Session) Filter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Flush persists any pending debounced edit immediately.
func (s *Session) Flush(ctx context.Context) error {
	s.mu.Lock()
	pending := s.timer != nil
	s.mu.Unlock()

	if !pending {
		return nil
	}
	return s.Save(ctx)
}

// Close drops any pending autosave without persisting it.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
