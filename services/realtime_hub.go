package services

import (
	"context"
	"sync"

	"fitnessmap/models"
)

const (
	EventProfileUpdated = "profile.updated"
	EventAlertCreated   = "alert.created"
)

// Event is what subscribers receive: either a new profile or a new alert.
type Event struct {
	Kind    string                 `json:"kind"`
	UserID  uint                   `json:"user_id"`
	Profile *models.FitnessProfile `json:"profile,omitempty"`
	Alert   *models.Alert          `json:"alert,omitempty"`
}

// Broker fans events out to the subscribers of one user.
type Broker interface {
	Publish(ctx context.Context, ev Event)
	// Subscribe registers onChange for userID and returns a func that removes it.
	Subscribe(userID uint, onChange func(Event)) (unsubscribe func())
}

type subscriber struct {
	fn func(Event)
}

// RealtimeHub is an in-process Broker.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*subscriber]struct{}
	metrics *Metrics
}

func NewRealtimeHub(m *Metrics) *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*subscriber]struct{}), metrics: m}
}

func (h *RealtimeHub) Subscribe(userID uint, onChange func(Event)) func() {
	s := &subscriber{fn: onChange}

	h.mu.Lock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*subscriber]struct{})
	}
	h.clients[userID][s] = struct{}{}
	h.mu.Unlock()
	h.metrics.subscriberAdded()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			if set := h.clients[userID]; set != nil {
				delete(set, s)
				if len(set) == 0 {
					delete(h.clients, userID)
				}
			}
			h.mu.Unlock()
			h.metrics.subscriberRemoved()
		})
	}
}

// Publish calls every subscriber of ev.UserID. Callbacks run outside the lock
// so they may unsubscribe.
func (h *RealtimeHub) Publish(_ context.Context, ev Event) {
	h.mu.RLock()
	subs := make([]*subscriber, 0, len(h.clients[ev.UserID]))
	for s := range h.clients[ev.UserID] {
		subs = append(subs, s)
	}
	h.mu.RUnlock()

	for _, s := range subs {
		s.fn(ev)
	}
}

// Subscribers reports how many callbacks are registered for a user.
func (h *RealtimeHub) Subscribers(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}
