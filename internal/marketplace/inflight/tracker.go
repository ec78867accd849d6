// Package inflight tracks pending transition calls per entity so a second
// click cannot race the first, and so a stale result can be told apart from
// the latest attempt.
package inflight

import (
	"sync"

	"github.com/google/uuid"
)

// Tracker gates one in-flight transition per entity id. Calls on different
// entities are independent.
type Tracker struct {
	mu       sync.Mutex
	attempts map[int64]string
	newToken func() string
}

// NewTracker returns a tracker that issues uuid attempt tokens.
func NewTracker() *Tracker {
	return &Tracker{
		attempts: make(map[int64]string),
		newToken: uuid.NewString,
	}
}

// NewTrackerWithTokens returns a tracker with an explicit token source.
func NewTrackerWithTokens(newToken func() string) *Tracker {
	tracker := NewTracker()
	if newToken != nil {
		tracker.newToken = newToken
	}
	return tracker
}

// Begin starts an attempt for entityID. It returns false when an attempt is
// already in flight for that entity, in which case the caller must not
// dispatch another call. The returned token identifies this attempt.
func (t *Tracker) Begin(entityID int64) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, busy := t.attempts[entityID]; busy {
		return "", false
	}
	token := t.newToken()
	t.attempts[entityID] = token
	return token, true
}

// Settle finishes the attempt identified by token. It reports whether the
// token is still the current attempt for entityID; a false result means the
// attempt was superseded and its outcome must be discarded as stale.
func (t *Tracker) Settle(entityID int64, token string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	current, ok := t.attempts[entityID]
	if !ok || current != token {
		return false
	}
	delete(t.attempts, entityID)
	return true
}

// Busy reports whether an attempt is in flight for entityID. Pages use this
// to keep the triggering control disabled until the call settles.
func (t *Tracker) Busy(entityID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, busy := t.attempts[entityID]
	return busy
}
