package store

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventKind names the input that changed.
type EventKind string

// Change notifications published by the store.
const (
	EventRadius   EventKind = "radius"
	EventOperator EventKind = "operator"
	EventDate     EventKind = "date"
	EventTRS      EventKind = "trs"
	EventTimeline EventKind = "timeline"
)

// Event tells subscribers that derived state has been recomputed. Seq grows
// by one per published event; a gap means the subscriber fell behind and
// should take a fresh snapshot.
type Event struct {
	Kind EventKind `json:"kind"`
	Seq  uint64    `json:"seq"`
}

const subscriberBuffer = 16

type subscription struct {
	id   string
	ch   chan Event
	once sync.Once
}

// eventBus is a fan-out pub/sub for store change events.
type eventBus struct {
	mu     sync.RWMutex
	subs   map[*subscription]struct{}
	seq    uint64
	closed bool
	onSize func(int)
}

func newEventBus(onSize func(int)) *eventBus {
	return &eventBus{subs: make(map[*subscription]struct{}), onSize: onSize}
}

// publish sends e to every subscriber without blocking.
func (b *eventBus) publish(kind EventKind) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.seq++
	e := Event{Kind: kind, Seq: b.seq}
	for sub := range b.subs {
		select {
		case sub.ch <- e:
		default:
			zap.L().Debug("store: subscriber behind, dropping event",
				zap.String("subscriber", sub.id),
				zap.String("kind", string(kind)),
			)
		}
	}
}

// subscribe returns a buffered channel of events and a function that ends
// the subscription and closes the channel. On a closed bus the channel is
// returned already closed.
func (b *eventBus) subscribe() (<-chan Event, func()) {
	sub := &subscription{id: uuid.NewString(), ch: make(chan Event, subscriberBuffer)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(sub.ch)
		return sub.ch, func() {}
	}
	b.subs[sub] = struct{}{}
	n := len(b.subs)
	b.mu.Unlock()
	b.resized(n)

	return sub.ch, func() { b.unsubscribe(sub) }
}

func (b *eventBus) unsubscribe(sub *subscription) {
	b.mu.Lock()
	_, ok := b.subs[sub]
	delete(b.subs, sub)
	n := len(b.subs)
	b.mu.Unlock()
	if ok {
		sub.once.Do(func() { close(sub.ch) })
		b.resized(n)
	}
}

// close ends every subscription. Later publishes are dropped.
func (b *eventBus) close() {
	b.mu.Lock()
	subs := b.subs
	b.subs = make(map[*subscription]struct{})
	b.closed = true
	b.mu.Unlock()

	for sub := range subs {
		sub.once.Do(func() { close(sub.ch) })
	}
	b.resized(0)
}

func (b *eventBus) size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func (b *eventBus) resized(n int) {
	if b.onSize != nil {
		b.onSize(n)
	}
}
