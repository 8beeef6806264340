package auth

import "sync"

// Session is the authenticated-actor snapshot mirrored by the Gate.
type Session struct {
	AdminID string `json:"adminId"`
	Email   string `json:"email"`
}

// Gate tracks whether an authenticated admin is present. It only mirrors
// what the auth service reports; it stores no credentials and enforces
// nothing — the JWT middleware and the metadata store's own refusal path are
// the real authorization boundaries.
type Gate struct {
	mu      sync.RWMutex
	session *Session
	subs    map[int]func(*Session)
	nextID  int
}

// Subscription is a cancellable registration for session-change
// notifications. Cancel it when the subscriber shuts down.
type Subscription struct {
	gate *Gate
	id   int
}

// Cancel removes the subscription; the callback is never invoked afterwards.
func (s *Subscription) Cancel() {
	s.gate.mu.Lock()
	defer s.gate.mu.Unlock()
	delete(s.gate.subs, s.id)
}

// NewGate returns a Gate in the anonymous state.
func NewGate() *Gate {
	return &Gate{subs: make(map[int]func(*Session))}
}

// Set records a sign-in (or session restore) and notifies subscribers.
func (g *Gate) Set(session Session) {
	g.mu.Lock()
	g.session = &session
	subs := g.snapshotSubs()
	g.mu.Unlock()

	for _, fn := range subs {
		fn(&session)
	}
}

// Clear records a sign-out and notifies subscribers with a nil session.
func (g *Gate) Clear() {
	g.mu.Lock()
	g.session = nil
	subs := g.snapshotSubs()
	g.mu.Unlock()

	for _, fn := range subs {
		fn(nil)
	}
}

// Authenticated reports whether an admin session is present.
func (g *Gate) Authenticated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.session != nil
}

// Current returns the current session, or nil when anonymous.
func (g *Gate) Current() *Session {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.session == nil {
		return nil
	}
	s := *g.session
	return &s
}

// Subscribe registers fn for session-change notifications and returns the
// handle used to cancel it.
func (g *Gate) Subscribe(fn func(*Session)) *Subscription {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextID++
	id := g.nextID
	g.subs[id] = fn
	return &Subscription{gate: g, id: id}
}

// snapshotSubs copies the callback set so notifications run outside the lock.
// Callers must hold the mutex.
func (g *Gate) snapshotSubs() []func(*Session) {
	out := make([]func(*Session), 0, len(g.subs))
	for _, fn := range g.subs {
		out = append(out, fn)
	}
	return out
}
