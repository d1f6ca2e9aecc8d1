// Package notify carries user-facing cues (toasts, mastery badges, confetti)
// out of the models. Delivery is fire-and-forget.
package notify

import (
	"log"
	"sync"
)

// Kind tells the client how to present a notification
type Kind string

const (
	KindSuccess     Kind = "success"
	KindMastered    Kind = "mastered"
	KindCelebration Kind = "celebration"
)

// Notification is a single user-facing message
type Notification struct {
	Kind        Kind   `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Sink receives notifications
type Sink interface {
	Notify(n Notification)
}

// Recorder buffers notifications until they are drained into a response
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// Drain returns the buffered notifications and clears the buffer
func (r *Recorder) Drain() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.items
	r.items = nil
	if out == nil {
		out = []Notification{}
	}
	return out
}

// LogSink writes notifications to the standard logger when enabled
type LogSink struct {
	Enabled bool
}

func (s LogSink) Notify(n Notification) {
	if s.Enabled {
		log.Printf("Notification [%s] %s: %s", n.Kind, n.Title, n.Description)
	}
}

// Multi fans a notification out to several sinks
type Multi []Sink

func (m Multi) Notify(n Notification) {
	for _, s := range m {
		s.Notify(n)
	}
}

// Discard drops every notification
var Discard Sink = discard{}

type discard struct{}

func (discard) Notify(Notification) {}
