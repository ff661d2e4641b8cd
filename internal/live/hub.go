// Package live fans todo change events out to a user's open sessions. It is
// the server half of the UI's "always mirror remote state" subscription:
// every mutation is published here and each connected client applies it.
package live

import (
	"sync"

	"studydeck/internal/domain/models"
)

// subscriberBuffer bounds each watcher's queue. A watcher that falls this
// far behind is dropped rather than blocking publishers.
const subscriberBuffer = 16

// Hub tracks todo watchers per user.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan models.TodoEvent]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[chan models.TodoEvent]struct{}),
	}
}

// Subscribe registers a watcher for a user's todo events. The returned
// cancel function must be called when the watcher disconnects.
func (h *Hub) Subscribe(userID string) (<-chan models.TodoEvent, func()) {
	ch := make(chan models.TodoEvent, subscriberBuffer)

	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[chan models.TodoEvent]struct{})
	}
	h.subs[userID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[userID]; ok {
			if _, ok := set[ch]; ok {
				delete(set, ch)
				close(ch)
			}
			if len(set) == 0 {
				delete(h.subs, userID)
			}
		}
		h.mu.Unlock()
	}

	return ch, cancel
}

// Publish delivers an event to every watcher of the user. Watchers with a
// full buffer are detached; a browser that slow has lost the mirror anyway
// and will resync on reconnect.
func (h *Hub) Publish(userID string, event models.TodoEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs[userID] {
		select {
		case ch <- event:
		default:
			delete(h.subs[userID], ch)
			close(ch)
		}
	}
	if len(h.subs[userID]) == 0 {
		delete(h.subs, userID)
	}
}

// WatcherCount reports the number of open subscriptions for a user.
func (h *Hub) WatcherCount(userID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[userID])
}
