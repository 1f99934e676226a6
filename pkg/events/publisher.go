// Package events provides a small publish/subscribe hub for pipeline
// observability. The pipeline never depends on its subscribers.
package events

import "sync"

// EventType represents the type of event
type EventType string

// Define event types
const (
	EventGameFeatured    EventType = "GAME_FEATURED"
	EventPositionApplied EventType = "POSITION_APPLIED"
	EventRecordSkipped   EventType = "RECORD_SKIPPED"
	EventFrameDropped    EventType = "FRAME_DROPPED"
	EventStreamClosed    EventType = "STREAM_CLOSED"
)

// Event represents an event in the system
type Event struct {
	Type    EventType
	GameID  string // Optional, can be empty for non-game events
	Payload interface{}
}

// Handler is a function that processes events
type Handler func(event Event)

// Publisher is the central event publisher
type Publisher struct {
	mu          sync.RWMutex
	subscribers map[EventType][]Handler
}

// NewPublisher creates a new event publisher
func NewPublisher() *Publisher {
	return &Publisher{
		subscribers: make(map[EventType][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (p *Publisher) Subscribe(eventType EventType, handler Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.subscribers[eventType] = append(p.subscribers[eventType], handler)
}

// Publish broadcasts an event to all subscribers
func (p *Publisher) Publish(event Event) {
	p.mu.RLock()
	handlers := p.subscribers[event.Type]
	p.mu.RUnlock()

	// Call all handlers
	for _, handler := range handlers {
		go handler(event) // Run handlers concurrently
	}
}
