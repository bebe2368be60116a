// Package hub streams graph events to browsers over Server-Sent Events.
package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultKeepAlive is the interval between keep-alive comments
const DefaultKeepAlive = 30 * time.Second

// Message is one named SSE event
type Message struct {
	Event string
	Data  interface{}
}

// Client represents a connected SSE client
type Client struct {
	id     string
	events chan []byte
}

// Hub manages SSE client connections
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan Message
	done       chan struct{}
	keepAlive  time.Duration
}

// New creates a new Hub. A non-positive keepAlive uses DefaultKeepAlive.
func New(keepAlive time.Duration) *Hub {
	if keepAlive <= 0 {
		keepAlive = DefaultKeepAlive
	}
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Message, 256),
		done:       make(chan struct{}),
		keepAlive:  keepAlive,
	}
}

// Run starts the hub's event loop and blocks until ctx is cancelled.
// Connected clients are disconnected on return.
func (h *Hub) Run(ctx context.Context) {
	defer h.shutdown()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			total := len(h.clients)
			h.mu.Unlock()
			log.Printf("SSE client connected: %s (total: %d)", client.id, total)

		case client := <-h.unregister:
			h.remove(client)

		case msg := <-h.broadcast:
			frame, err := encode(msg)
			if err != nil {
				log.Printf("Failed to marshal event %s: %v", msg.Event, err)
				continue
			}

			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.events <- frame:
				default:
					// Client is slow, skip this message
					log.Printf("SSE client %s is slow, skipping %s", client.id, msg.Event)
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.events)
	}
	total := len(h.clients)
	h.mu.Unlock()
	log.Printf("SSE client disconnected: %s (total: %d)", client.id, total)
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	for client := range h.clients {
		delete(h.clients, client)
		close(client.events)
	}
	h.mu.Unlock()
	close(h.done)
}

func encode(msg Message) ([]byte, error) {
	data, err := json.Marshal(msg.Data)
	if err != nil {
		return nil, err
	}
	if msg.Event == "" {
		return []byte(fmt.Sprintf("data: %s\n\n", data)), nil
	}
	return []byte(fmt.Sprintf("event: %s\ndata: %s\n\n", msg.Event, data)), nil
}

// Broadcast sends an event to all connected clients
func (h *Hub) Broadcast(event string, data interface{}) {
	select {
	case h.broadcast <- Message{Event: event, Data: data}:
	default:
		log.Println("Broadcast channel full, dropping event")
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeHTTP handles SSE connections
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	client := &Client{
		id:     uuid.NewString(),
		events: make(chan []byte, 64),
	}

	select {
	case h.register <- client:
	case <-h.done:
		http.Error(w, "event stream closed", http.StatusServiceUnavailable)
		return
	case <-r.Context().Done():
		return
	}

	defer func() {
		select {
		case h.unregister <- client:
		case <-h.done:
		}
	}()

	fmt.Fprintf(w, ": connected\n\n")
	flusher.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-client.events:
			if !ok {
				return
			}
			if _, err := w.Write(msg); err != nil {
				return
			}
			flusher.Flush()

		case <-ticker.C:
			if _, err := fmt.Fprintf(w, ": keepalive\n\n"); err != nil {
				return
			}
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
