package sse

import (
	"sync"
)

// Event is an occupancy notification pushed to calendar clients watching a
// service post.
type Event struct {
	PostID string
	Event  string
	Data   interface{}
}

// Hub fans occupancy events out to subscribers, keyed by post ID.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a subscriber for a post and returns the event channel
// and a cleanup function.
func (h *Hub) Subscribe(postID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	if h.subscribers[postID] == nil {
		h.subscribers[postID] = make(map[chan Event]struct{})
	}
	h.subscribers[postID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[postID], ch)
		close(ch)
		if len(h.subscribers[postID]) == 0 {
			delete(h.subscribers, postID)
		}
	}

	return ch, cleanup
}

// Publish sends an event to all subscribers of a post.
func (h *Hub) Publish(postID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[postID]; ok {
		for ch := range subs {
			select {
			case ch <- event:
			default:
				// Skip if channel is full (non-blocking to prevent deadlock)
			}
		}
	}
}

// SubscriberCount returns the number of active subscribers for a post.
func (h *Hub) SubscriberCount(postID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if subs, ok := h.subscribers[postID]; ok {
		return len(subs)
	}
	return 0
}
