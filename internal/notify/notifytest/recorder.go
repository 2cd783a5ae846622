// Package notifytest provides a Notifier that records what it was sent.
package notifytest

import (
	"sync"

	"github.com/AnshRaj112/neurosphere-backend/internal/notify"
)

type Sent struct {
	UserID       string
	Notification notify.Notification
}

type Recorder struct {
	mu   sync.Mutex
	sent []Sent
}

func (r *Recorder) Notify(userID string, n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, Sent{UserID: userID, Notification: n})
}

func (r *Recorder) Sent() []Sent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Sent(nil), r.sent...)
}

// Titles lists the titles sent so far, in order.
func (r *Recorder) Titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.sent))
	for _, s := range r.sent {
		out = append(out, s.Notification.Title)
	}
	return out
}
