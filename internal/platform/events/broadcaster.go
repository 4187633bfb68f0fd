package events

import (
	"sync"
	"time"
)

// Event is one live-update message fanned out to subscribers of a topic.
// Topics are restaurant names; the payload is a DTO the handlers serialize.
type Event struct {
	Topic     string      `json:"-"`
	Kind      string      `json:"kind"` // e.g. "register.closed", "stock.changed", "notification.created"
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Broadcaster fans events out to per-topic subscribers. Subscribe returns a
// disposer that the caller must invoke on view teardown; an undisposed
// subscription is a leaked callback registration.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan Event
	buffer int
}

// NewBroadcaster creates a Broadcaster whose subscriber channels buffer the
// given number of events before publishes to that subscriber are dropped.
func NewBroadcaster(buffer int) *Broadcaster {
	if buffer < 1 {
		buffer = 1
	}
	return &Broadcaster{
		subs:   make(map[string]map[int]chan Event),
		buffer: buffer,
	}
}

// Subscribe registers a listener on a topic. It returns the event channel and
// a disposer. The disposer is idempotent; after it returns the channel is
// closed and no further events arrive.
func (b *Broadcaster) Subscribe(topic string) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++

	ch := make(chan Event, b.buffer)
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]chan Event)
	}
	b.subs[topic][id] = ch

	var once sync.Once
	dispose := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if topicSubs, ok := b.subs[topic]; ok {
				delete(topicSubs, id)
				if len(topicSubs) == 0 {
					delete(b.subs, topic)
				}
			}
			close(ch)
		})
	}
	return ch, dispose
}

// Publish delivers an event to every subscriber of its topic. Delivery is
// non-blocking: a subscriber whose buffer is full misses the event rather
// than stalling the publisher.
func (b *Broadcaster) Publish(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs[ev.Topic] {
		select {
		case ch <- ev:
		default:
		}
	}
}

// SubscriberCount reports the number of live subscriptions on a topic.
func (b *Broadcaster) SubscriberCount(topic string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[topic])
}
