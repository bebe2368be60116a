package service

import "sync"

// EventType names a graph lifecycle event; it is also the SSE event name
type EventType string

const (
	EventGraphGenerated EventType = "graph_generated"
	EventGraphStored    EventType = "graph_stored"
	EventGraphDeleted   EventType = "graph_deleted"
)

// Event is published after a graph operation succeeds
type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// EventBus fans events out to subscriber channels. Publishing never
// blocks: a subscriber whose buffer is full misses the event.
type EventBus struct {
	mu          sync.RWMutex
	subscribers []chan<- Event
	dropped     int
	closed      bool
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers ch. The bus closes ch on Close.
func (eb *EventBus) Subscribe(ch chan<- Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	if eb.closed {
		close(ch)
		return
	}
	eb.subscribers = append(eb.subscribers, ch)
}

// Publish sends an event to every subscriber with room for it
func (eb *EventBus) Publish(event Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	if eb.closed {
		return
	}
	for _, ch := range eb.subscribers {
		select {
		case ch <- event:
		default:
			eb.dropped++
		}
	}
}

// Dropped returns how many deliveries were skipped for full subscribers
func (eb *EventBus) Dropped() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return eb.dropped
}

// Close closes every subscriber channel; later publishes are ignored
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	if eb.closed {
		return
	}
	eb.closed = true
	for _, ch := range eb.subscribers {
		close(ch)
	}
	eb.subscribers = nil
}
