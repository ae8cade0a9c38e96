package gateway

import "sync"

// Tracker holds the server's active session. Tools share one Tracker so
// a reset is seen by every handler.
type Tracker struct {
	mu      sync.RWMutex
	session *Session
}

// NewTracker creates a Tracker with a fresh session.
func NewTracker() *Tracker {
	return &Tracker{session: NewSession()}
}

// Current returns the active session.
func (t *Tracker) Current() *Session {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.session
}

// Reset discards the active session and starts a new one.
func (t *Tracker) Reset() *Session {
	s := NewSession()
	t.mu.Lock()
	t.session = s
	t.mu.Unlock()
	return s
}
