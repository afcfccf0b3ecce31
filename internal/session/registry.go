package session

import (
	"errors"
	"strings"
	"sync"
	"time"
)

var (
	ErrSessionExists   = errors.New("session already exists")
	ErrSessionNotFound = errors.New("session not found")
)

// Registry maps connection identities to sessions, preserving connect
// order so the per-tick round-robin is stable. The transport layer adds
// and removes entries from its own goroutines; the scheduler iterates
// once per tick.
type Registry struct {
	mu           sync.RWMutex
	sessions     map[string]*Session
	order        []string
	lastActivity time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions:     make(map[string]*Session),
		lastActivity: time.Now(),
	}
}

// Add registers a session. The id must not already be present.
func (r *Registry) Add(s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[s.ID]; exists {
		return ErrSessionExists
	}
	r.sessions[s.ID] = s
	r.order = append(r.order, s.ID)
	r.lastActivity = time.Now()
	return nil
}

// Remove drops a session from the round-robin.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[id]; !exists {
		return
	}
	delete(r.sessions, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get returns the session with the given id, or nil.
func (r *Registry) Get(id string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

// ByPlayer returns the session owning the named player, or nil. Name
// matching is case-insensitive.
func (r *Registry) ByPlayer(name string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sessions {
		if s.Player != nil && strings.EqualFold(s.Player.Name, name) {
			return s
		}
	}
	return nil
}

// Len returns the number of connected sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Enqueue appends a raw command to the identified session's queue.
// Called by the transport layer.
func (r *Registry) Enqueue(id, raw string) error {
	r.mu.Lock()
	s := r.sessions[id]
	if s == nil {
		r.mu.Unlock()
		return ErrSessionNotFound
	}
	r.lastActivity = time.Now()
	r.mu.Unlock()

	s.Enqueue(raw)
	return nil
}

// ForEach calls fn for each session in connect order. The order is
// snapshotted first, so fn may remove sessions while iterating.
func (r *Registry) ForEach(fn func(*Session)) {
	r.mu.RLock()
	ids := append([]string{}, r.order...)
	r.mu.RUnlock()

	for _, id := range ids {
		if s := r.Get(id); s != nil {
			fn(s)
		}
	}
}

// LastActivity returns the time any session last enqueued a command.
func (r *Registry) LastActivity() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastActivity
}

// MarkActivity resets the global idle timer. Used after a world reset so
// the reset does not immediately retrigger.
func (r *Registry) MarkActivity() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastActivity = time.Now()
}
