// Package lifecycle bridges inkpad store events to the generic lifecycle
// event-source interface, so a host application can supervise the note
// store alongside its other workers.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/arqv/inkpad/pkg/core"
)

type noteSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits note store events.
// It bridges the typed event channel to the generic lifecycle Event interface.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &noteSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *noteSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *noteSource) Start(ctx context.Context) error {
	// Uses lifecycle.Go so the bridge itself is tracked and panic-safe.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
