package core

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultEventBuffer is the per-subscriber channel capacity.
const DefaultEventBuffer = 100

// Broker fans out store events to rendering collaborators.
// Delivery is best-effort: a subscriber whose buffer is full misses the
// event rather than blocking a mutation.
type Broker struct {
	mu      sync.RWMutex
	subs    map[string]chan Event
	bufSize int
}

// NewBroker creates a broker with the given per-subscriber buffer size.
// Zero means DefaultEventBuffer.
func NewBroker(bufSize int) *Broker {
	if bufSize <= 0 {
		bufSize = DefaultEventBuffer
	}
	return &Broker{
		subs:    make(map[string]chan Event),
		bufSize: bufSize,
	}
}

// Subscribe registers a new listener and returns its handle and channel.
func (b *Broker) Subscribe() (string, <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan Event, b.bufSize)
	b.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a listener and closes its channel.
func (b *Broker) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// Publish sends an event to every subscriber without blocking.
func (b *Broker) Publish(evt Event) {
	if evt.Timestamp == 0 {
		evt.Timestamp = time.Now().Unix()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs {
		select {
		case ch <- evt:
		default:
			// Slow subscriber: drop instead of stalling the store.
		}
	}
}

// Len returns the number of active subscribers.
func (b *Broker) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
