package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrNoActiveNote is returned by session operations that need a selected note.
	ErrNoActiveNote = errors.New("no active note")

	// ErrNotFound is returned when a note ID is not present in the working set.
	ErrNotFound = errors.New("note not found")

	// ErrUnknownField is returned when an edit names a field the note does
	// not have.
	ErrUnknownField = errors.New("unknown note field")
)

// RemoteError is a failed call against the notes API: any non-2xx status.
// The response body is carried as opaque text for diagnostics only.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote returned status %d: %s", e.Status, e.Body)
}

// IsRemoteError reports whether err is (or wraps) a RemoteError.
func IsRemoteError(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
