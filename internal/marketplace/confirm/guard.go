// Package confirm implements the two-step confirmation guard for
// irreversible request actions. A first trigger arms the action and a second
// trigger inside the arming window fires it; the window elapsing, or arming
// a different request, quietly disarms.
package confirm

import (
	"sync"
	"time"
)

// DefaultWindow is the arming window used by the marketplace pages.
const DefaultWindow = 4 * time.Second

// Result reports what a trigger did.
type Result string

const (
	// ResultArmed means the action is now armed and needs a second trigger.
	ResultArmed Result = "armed"
	// ResultFire means the second trigger landed inside the window and the
	// caller should now dispatch the action.
	ResultFire Result = "fire"
)

// Guard tracks the armed state for one list context. At most one entity is
// armed at a time; arming another entity disarms the first.
type Guard struct {
	mu      sync.Mutex
	window  time.Duration
	clock   func() time.Time
	armed   bool
	armedID int64
	armedAt time.Time
}

// NewGuard returns a guard with the default arming window.
func NewGuard() *Guard {
	return NewGuardWithClock(DefaultWindow, time.Now)
}

// NewGuardWithClock returns a guard with an explicit window and clock.
func NewGuardWithClock(window time.Duration, clock func() time.Time) *Guard {
	if window <= 0 {
		window = DefaultWindow
	}
	if clock == nil {
		clock = time.Now
	}
	return &Guard{window: window, clock: clock}
}

// Trigger records one user trigger for entityID and reports whether the
// action is armed or should fire. A fire consumes the armed state, so a
// further trigger starts over.
func (g *Guard) Trigger(entityID int64) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock()
	if g.armed && g.armedID == entityID && now.Sub(g.armedAt) <= g.window {
		g.armed = false
		return ResultFire
	}

	g.armed = true
	g.armedID = entityID
	g.armedAt = now
	return ResultArmed
}

// Reset disarms the guard. Callers reset after a successful action or on
// navigation away so stale armed state cannot fire later.
func (g *Guard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.armed = false
}

// Armed returns the currently armed entity id, if any. Expired arming does
// not count.
func (g *Guard) Armed() (int64, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.armed {
		return 0, false
	}
	if g.clock().Sub(g.armedAt) > g.window {
		g.armed = false
		return 0, false
	}
	return g.armedID, true
}
