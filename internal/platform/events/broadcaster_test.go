package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func receiveOrTimeout(t *testing.T, ch <-chan Event) (Event, bool) {
	t.Helper()
	select {
	case ev, ok := <-ch:
		return ev, ok
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}, false
	}
}

func TestPublishReachesSubscribers(t *testing.T) {
	b := NewBroadcaster(4)

	ch, dispose := b.Subscribe("Chez Fifi")
	defer dispose()

	b.Publish(Event{Topic: "Chez Fifi", Kind: "stock.changed"})

	ev, ok := receiveOrTimeout(t, ch)
	assert.True(t, ok)
	assert.Equal(t, "stock.changed", ev.Kind)
	assert.False(t, ev.Timestamp.IsZero())
}

func TestTopicsAreIsolated(t *testing.T) {
	b := NewBroadcaster(4)

	ch, dispose := b.Subscribe("Chez Fifi")
	defer dispose()

	b.Publish(Event{Topic: "Autre Maison", Kind: "register.closed"})

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %q on foreign topic", ev.Kind)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDisposerUnsubscribesAndClosesChannel(t *testing.T) {
	b := NewBroadcaster(4)

	ch, dispose := b.Subscribe("Chez Fifi")
	assert.Equal(t, 1, b.SubscriberCount("Chez Fifi"))

	dispose()
	assert.Equal(t, 0, b.SubscriberCount("Chez Fifi"))

	_, ok := <-ch
	assert.False(t, ok, "channel must be closed after disposal")

	// Disposing twice is harmless.
	dispose()
}

func TestPublishNeverBlocksOnFullBuffer(t *testing.T) {
	b := NewBroadcaster(1)

	ch, dispose := b.Subscribe("Chez Fifi")
	defer dispose()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			b.Publish(Event{Topic: "Chez Fifi", Kind: "notification.created"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}

	ev, ok := receiveOrTimeout(t, ch)
	assert.True(t, ok)
	assert.Equal(t, "notification.created", ev.Kind)
}
