package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arqv/inkpad/pkg/core"
)

func TestBroker(t *testing.T) {
	t.Run("Fans Out To All Subscribers", func(t *testing.T) {
		b := core.NewBroker(4)
		_, ch1 := b.Subscribe()
		_, ch2 := b.Subscribe()

		b.Publish(core.Event{Type: core.EventListChanged})

		evt1 := <-ch1
		evt2 := <-ch2
		assert.Equal(t, core.EventListChanged, evt1.Type)
		assert.Equal(t, core.EventListChanged, evt2.Type)
		assert.NotZero(t, evt1.Timestamp, "broker stamps events")
	})

	t.Run("Unsubscribe Closes The Channel", func(t *testing.T) {
		b := core.NewBroker(1)
		id, ch := b.Subscribe()
		b.Unsubscribe(id)

		_, open := <-ch
		assert.False(t, open)
		assert.Equal(t, 0, b.Len())

		// Unsubscribing twice is harmless.
		b.Unsubscribe(id)
	})

	t.Run("Slow Subscriber Never Blocks Publish", func(t *testing.T) {
		b := core.NewBroker(1)
		_, ch := b.Subscribe()

		// Fill the buffer, then keep publishing: events past the buffer
		// are dropped, not queued.
		b.Publish(core.Event{Type: core.EventModify, ID: "a"})
		b.Publish(core.Event{Type: core.EventModify, ID: "b"})
		b.Publish(core.Event{Type: core.EventModify, ID: "c"})

		evt := <-ch
		require.Equal(t, "a", evt.ID)
		select {
		case extra := <-ch:
			t.Fatalf("expected dropped events, got %v", extra)
		default:
		}
	})
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "LIST_CHANGED", core.Event{Type: core.EventListChanged}.String())
	assert.Equal(t, "MODIFY n1", core.Event{Type: core.EventModify, ID: "n1"}.String())
}
