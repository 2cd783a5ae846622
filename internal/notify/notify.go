// Package notify delivers user-facing toasts to connected clients.
package notify

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
)

// Notification is one toast.
type Notification struct {
	Kind        Kind      `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Notifier is a fire-and-forget toast sink.
type Notifier interface {
	Notify(userID string, n Notification)
}

// subscriberBuffer is how many undelivered toasts a slow subscriber may hold
// before new ones are dropped for it.
const subscriberBuffer = 16

// Hub fans notifications out to the subscribers of each user in this process.
type Hub struct {
	clock clockwork.Clock
	log   *zap.Logger

	mu   sync.RWMutex
	subs map[string]map[chan Notification]struct{}
}

func NewHub(clock clockwork.Clock, log *zap.Logger) *Hub {
	return &Hub{
		clock: clock,
		log:   log.Named("notify"),
		subs:  make(map[string]map[chan Notification]struct{}),
	}
}

// Subscribe registers a receiver for userID. The returned cancel func closes
// the channel and may be called more than once.
func (h *Hub) Subscribe(userID string) (<-chan Notification, func()) {
	ch := make(chan Notification, subscriberBuffer)

	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[chan Notification]struct{})
	}
	h.subs[userID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[userID], ch)
			if len(h.subs[userID]) == 0 {
				delete(h.subs, userID)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Notify delivers n to every local subscriber of userID without blocking.
func (h *Hub) Notify(userID string, n Notification) {
	if n.Timestamp.IsZero() {
		n.Timestamp = h.clock.Now().UTC()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[userID] {
		select {
		case ch <- n:
		default:
			h.log.Debug("dropping notification for slow subscriber",
				zap.String("user_id", userID), zap.String("title", n.Title))
		}
	}
}

// Subscribers reports how many receivers userID has in this process.
func (h *Hub) Subscribers(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[userID])
}

var _ Notifier = (*Hub)(nil)
