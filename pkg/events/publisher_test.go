package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_DeliversToSubscribers(t *testing.T) {
	p := NewPublisher()

	received := make(chan Event, 1)
	p.Subscribe(EventGameFeatured, func(ev Event) {
		received <- ev
	})

	p.Publish(Event{Type: EventGameFeatured, GameID: "abc123"})

	select {
	case ev := <-received:
		assert.Equal(t, "abc123", ev.GameID)
	case <-time.After(time.Second):
		require.Fail(t, "handler was never called")
	}
}

func TestPublisher_IgnoresUnsubscribedTypes(t *testing.T) {
	p := NewPublisher()

	received := make(chan Event, 1)
	p.Subscribe(EventGameFeatured, func(ev Event) {
		received <- ev
	})

	p.Publish(Event{Type: EventFrameDropped})

	select {
	case <-received:
		require.Fail(t, "handler called for a type it never subscribed to")
	case <-time.After(50 * time.Millisecond):
	}
}
