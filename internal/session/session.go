package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/thornvale/mud/internal/game"
)

// Session is the runtime state for one connected client. The transport
// layer appends raw commands from its own goroutine, so queue access is
// locked; every other field is only touched inside the tick context.
type Session struct {
	ID string

	// Player is nil until the (external) authentication flow attaches one.
	Player *game.Player

	Mode Mode

	// Password-change flow state, valid while Mode == ModePasswordChange.
	PasswordStage PasswordStage
	NewPassword   string

	// Pending is set while Mode == ModePendingInput.
	Pending *PendingInput

	// SleepTicks counts ticks slept since the last stamina point healed.
	SleepTicks int

	mu           sync.Mutex
	queue        []string
	lastActivity time.Time
}

// New creates a session with a fresh identity token.
func New() *Session {
	return &Session{
		ID:           uuid.New().String(),
		lastActivity: time.Now(),
	}
}

// Enqueue appends a raw command to the back of the queue and resets the
// idle timer.
func (s *Session) Enqueue(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, raw)
	s.lastActivity = time.Now()
}

// PushFront re-inserts commands at the front of the queue, preserving
// their relative order. Used when a multi-command line is split so each
// sub-command consumes exactly one future tick.
func (s *Session) PushFront(raws ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(append([]string{}, raws...), s.queue...)
}

// Dequeue removes and returns the front of the queue.
func (s *Session) Dequeue() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return "", false
	}
	raw := s.queue[0]
	s.queue = s.queue[1:]
	return raw, true
}

// QueueLen returns the number of queued commands.
func (s *Session) QueueLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// ClearQueue discards all queued commands.
func (s *Session) ClearQueue() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = nil
}

// LastActivity returns when the session last enqueued a command.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActivity
}
