package session

import (
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/thornvale/mud/internal/game"
)

func TestRegistryIterationOrder(t *testing.T) {
	r := NewRegistry()

	var ids []string
	for i := 0; i < 5; i++ {
		s := New()
		if err := r.Add(s); err != nil {
			t.Fatalf("adding session: %v", err)
		}
		ids = append(ids, s.ID)
	}

	var seen []string
	r.ForEach(func(s *Session) {
		seen = append(seen, s.ID)
	})

	testutil.AssertEqual(t, "session count", len(seen), len(ids))
	for i := range ids {
		testutil.AssertEqual(t, "connect order", seen[i], ids[i])
	}
}

func TestRegistryRemoveDuringIteration(t *testing.T) {
	r := NewRegistry()

	a, b, c := New(), New(), New()
	for _, s := range []*Session{a, b, c} {
		if err := r.Add(s); err != nil {
			t.Fatalf("adding session: %v", err)
		}
	}

	var seen int
	r.ForEach(func(s *Session) {
		seen++
		// Removing the current session mid-iteration must not skip or
		// repeat the others.
		if s.ID == b.ID {
			r.Remove(b.ID)
		}
	})

	testutil.AssertEqual(t, "visited", seen, 3)
	testutil.AssertEqual(t, "remaining", r.Len(), 2)
}

func TestRegistrySentinelErrors(t *testing.T) {
	r := NewRegistry()

	s := New()
	if err := r.Add(s); err != nil {
		t.Fatalf("adding session: %v", err)
	}
	if err := r.Add(s); !errors.Is(err, ErrSessionExists) {
		t.Fatalf("expected ErrSessionExists, got %v", err)
	}

	if err := r.Enqueue("no-such-id", "look"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestRegistryByPlayer(t *testing.T) {
	r := NewRegistry()

	s := New()
	s.Player = game.NewPlayer("Alice", 0, "spawn")
	if err := r.Add(s); err != nil {
		t.Fatalf("adding session: %v", err)
	}

	found := r.ByPlayer("alice")
	if found == nil {
		t.Fatal("expected session for alice")
	}
	testutil.AssertEqual(t, "session id", found.ID, s.ID)

	testutil.AssertEqual(t, "unknown player", r.ByPlayer("bob") == nil, true)
}

func TestRegistryEnqueueMarksActivity(t *testing.T) {
	r := NewRegistry()
	s := New()
	if err := r.Add(s); err != nil {
		t.Fatalf("adding session: %v", err)
	}

	before := r.LastActivity()
	if err := r.Enqueue(s.ID, "look"); err != nil {
		t.Fatalf("enqueueing: %v", err)
	}

	if r.LastActivity().Before(before) {
		t.Fatal("activity timestamp went backwards")
	}
	testutil.AssertEqual(t, "queued", s.QueueLen(), 1)
}
