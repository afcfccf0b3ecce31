package combat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
	"github.com/thornvale/mud/internal/game"
)

type publishedMessage struct {
	target string
	data   string
}

type recordingPublisher struct {
	players []publishedMessage
	rooms   []publishedMessage
	stats   []publishedMessage
}

func (p *recordingPublisher) PublishToPlayer(name string, data []byte) error {
	p.players = append(p.players, publishedMessage{target: name, data: string(data)})
	return nil
}

func (p *recordingPublisher) PublishToRoom(roomID string, data []byte, exclude ...string) error {
	p.rooms = append(p.rooms, publishedMessage{target: roomID, data: string(data)})
	return nil
}

func (p *recordingPublisher) PublishStats(name string, data []byte) error {
	p.stats = append(p.stats, publishedMessage{target: name, data: string(data)})
	return nil
}

type recordedEvent struct {
	kind      string
	loser     string
	winner    string
	direction string
	quiet     bool
}

type recordingHandler struct {
	events []recordedEvent
}

func (h *recordingHandler) OnDefeat(loser, winner Combatant, room string) {
	h.events = append(h.events, recordedEvent{kind: "defeat", loser: loser.CombatName(), winner: winner.CombatName()})
}

func (h *recordingHandler) OnFlee(fleeing, opponent Combatant, room, direction string, quiet bool) {
	h.events = append(h.events, recordedEvent{kind: "flee", loser: fleeing.CombatName(), direction: direction, quiet: quiet})
}

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time          { return c.t }
func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEngine(h EventHandler) (*Engine, *testClock, *recordingPublisher) {
	clock := &testClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	pub := &recordingPublisher{}
	e := NewEngine(pub, h,
		WithClock(clock.now),
		WithVariance(0),
		WithRolls(func(n int) int { return 0 }, func() float64 { return 0 }),
	)
	return e, clock, pub
}

func newFighter(name string, health int) *PlayerCombatant {
	p := game.NewPlayer(name, 0, "arena")
	p.Health = health
	p.MaxHealth = health
	return &PlayerCombatant{Player: p}
}

func TestEngageRejections(t *testing.T) {
	e, _, _ := newTestEngine(&recordingHandler{})

	alice := newFighter("Alice", 100)
	bob := newFighter("Bob", 100)
	carol := newFighter("Carol", 100)

	if _, err := e.Engage(alice, alice); !errors.Is(err, ErrSelfAttack) {
		t.Fatalf("expected ErrSelfAttack, got %v", err)
	}

	if _, err := e.Engage(alice, bob); err != nil {
		t.Fatalf("first engage: %v", err)
	}
	testutil.AssertEqual(t, "alice engaged", e.IsEngaged(PlayerID("Alice")), true)
	testutil.AssertEqual(t, "alice in combat", alice.Player.InCombat, true)

	// Second attack from an engaged combatant is rejected, not stacked.
	if _, err := e.Engage(alice, carol); !errors.Is(err, ErrAlreadyEngaged) {
		t.Fatalf("expected ErrAlreadyEngaged for attacker, got %v", err)
	}
	if _, err := e.Engage(carol, bob); !errors.Is(err, ErrAlreadyEngaged) {
		t.Fatalf("expected ErrAlreadyEngaged for defender, got %v", err)
	}
	testutil.AssertEqual(t, "carol unengaged", e.IsEngaged(PlayerID("Carol")), false)
}

func TestNoResolutionInsideInterval(t *testing.T) {
	e, clock, _ := newTestEngine(&recordingHandler{})
	ctx := context.Background()

	alice := newFighter("Alice", 100)
	bob := newFighter("Bob", 100)
	if _, err := e.Engage(alice, bob); err != nil {
		t.Fatalf("engage: %v", err)
	}

	// Several scheduler ticks inside one combat interval: no rounds.
	for i := 0; i < 5; i++ {
		clock.advance(500 * time.Millisecond)
		if err := e.Tick(ctx); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
	testutil.AssertEqual(t, "health before interval", bob.Player.Health, 100)

	// Crossing the interval resolves exactly one round.
	clock.advance(500 * time.Millisecond)
	if err := e.Tick(ctx); err != nil {
		t.Fatalf("tick: %v", err)
	}
	afterOne := bob.Player.Health
	if afterOne >= 100 {
		t.Fatalf("expected damage after interval, health still %d", afterOne)
	}

	// The very next tick must not resolve again.
	clock.advance(500 * time.Millisecond)
	if err := e.Tick(ctx); err != nil {
		t.Fatalf("tick: %v", err)
	}
	testutil.AssertEqual(t, "single resolution", bob.Player.Health, afterOne)
}

func TestRoundDrainsStamina(t *testing.T) {
	e, clock, _ := newTestEngine(&recordingHandler{})

	alice := newFighter("Alice", 500)
	bob := newFighter("Bob", 500)
	startStamina := alice.Player.Stamina
	if _, err := e.Engage(alice, bob); err != nil {
		t.Fatalf("engage: %v", err)
	}

	clock.advance(DefaultInterval)
	if err := e.Tick(context.Background()); err != nil {
		t.Fatalf("tick: %v", err)
	}

	testutil.AssertEqual(t, "attacker stamina", alice.Player.Stamina, startStamina-StaminaCostPerRound)
	testutil.AssertEqual(t, "defender stamina", bob.Player.Stamina, startStamina-StaminaCostPerRound)
}

func TestDefeatResolvesEncounter(t *testing.T) {
	h := &recordingHandler{}
	e, clock, _ := newTestEngine(h)

	alice := newFighter("Alice", 100)
	bob := newFighter("Bob", 1) // dies to the first strike
	if _, err := e.Engage(alice, bob); err != nil {
		t.Fatalf("engage: %v", err)
	}

	clock.advance(DefaultInterval)
	if err := e.Tick(context.Background()); err != nil {
		t.Fatalf("tick: %v", err)
	}

	testutil.AssertEqual(t, "events", len(h.events), 1)
	testutil.AssertEqual(t, "kind", h.events[0].kind, "defeat")
	testutil.AssertEqual(t, "loser", h.events[0].loser, "Bob")
	testutil.AssertEqual(t, "winner", h.events[0].winner, "Alice")

	testutil.AssertEqual(t, "alice released", e.IsEngaged(PlayerID("Alice")), false)
	testutil.AssertEqual(t, "bob released", e.IsEngaged(PlayerID("Bob")), false)
	testutil.AssertEqual(t, "alice combat flag", alice.Player.InCombat, false)

	// A defeated defender never strikes back.
	testutil.AssertEqual(t, "alice unharmed", alice.Player.Health, 100)
}

func TestFleeAvailableAnyTick(t *testing.T) {
	h := &recordingHandler{}
	e, _, _ := newTestEngine(h)

	alice := newFighter("Alice", 100)
	bob := newFighter("Bob", 100)
	if _, err := e.Engage(alice, bob); err != nil {
		t.Fatalf("engage: %v", err)
	}

	// No clock advance: flee works mid-interval.
	if err := e.Flee(PlayerID("Alice"), "north"); err != nil {
		t.Fatalf("flee: %v", err)
	}

	testutil.AssertEqual(t, "events", len(h.events), 1)
	testutil.AssertEqual(t, "kind", h.events[0].kind, "flee")
	testutil.AssertEqual(t, "direction", h.events[0].direction, "north")
	testutil.AssertEqual(t, "quiet", h.events[0].quiet, false)
	testutil.AssertEqual(t, "bob released", e.IsEngaged(PlayerID("Bob")), false)

	if err := e.Flee(PlayerID("Alice"), ""); !errors.Is(err, ErrNotEngaged) {
		t.Fatalf("expected ErrNotEngaged, got %v", err)
	}
}

func TestDisconnectIsQuietFlee(t *testing.T) {
	h := &recordingHandler{}
	e, _, _ := newTestEngine(h)

	alice := newFighter("Alice", 100)
	bob := newFighter("Bob", 100)
	if _, err := e.Engage(alice, bob); err != nil {
		t.Fatalf("engage: %v", err)
	}

	e.Disconnect(PlayerID("Alice"))

	testutil.AssertEqual(t, "events", len(h.events), 1)
	testutil.AssertEqual(t, "kind", h.events[0].kind, "flee")
	testutil.AssertEqual(t, "quiet", h.events[0].quiet, true)
	testutil.AssertEqual(t, "bob released", e.IsEngaged(PlayerID("Bob")), false)

	// Disconnecting again is a no-op.
	e.Disconnect(PlayerID("Alice"))
	testutil.AssertEqual(t, "no extra events", len(h.events), 1)
}
