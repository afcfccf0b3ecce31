package dispatch

import (
	"context"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pixil98/go-testutil"
	"github.com/thornvale/mud/internal/game"
	"github.com/thornvale/mud/internal/session"
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

func (p *recordingPublisher) playerMessages(name string) []string {
	var out []string
	for _, m := range p.players {
		if m.target == name {
			out = append(out, m.data)
		}
	}
	return out
}

type fakeEngine struct {
	disconnected []string
}

func (e *fakeEngine) Disconnect(id string) {
	e.disconnected = append(e.disconnected, id)
}

type fakeCharStore struct {
	records map[string]*game.Character
	saved   []string
}

func newFakeCharStore() *fakeCharStore {
	return &fakeCharStore{records: map[string]*game.Character{}}
}

func (s *fakeCharStore) Save(id string, c *game.Character) error {
	s.records[id] = c
	s.saved = append(s.saved, id)
	return nil
}

func (s *fakeCharStore) Get(id string) *game.Character { return s.records[id] }

func (s *fakeCharStore) GetAll() map[string]*game.Character { return s.records }

type recordingResetter struct {
	calls int
}

func (r *recordingResetter) Reset(context.Context) error {
	r.calls++
	return nil
}

type fixture struct {
	world    *game.World
	sessions *session.Registry
	handlers *Registry
	engine   *fakeEngine
	chars    *fakeCharStore
	pub      *recordingPublisher
	executed []string
}

func newFixture(t *testing.T, opts ...ProcessorOpt) (*fixture, *Processor) {
	t.Helper()

	f := &fixture{
		world:    game.NewWorld("spawn"),
		sessions: session.NewRegistry(),
		handlers: NewHandlerRegistry(),
		engine:   &fakeEngine{},
		chars:    newFakeCharStore(),
		pub:      &recordingPublisher{},
	}
	f.world.AddRoom("spawn", &game.Room{Name: "Spawn", Description: "A quiet clearing."})

	record := func(verb string) HandlerFunc {
		return func(ctx context.Context, cmd *Context) error {
			f.executed = append(f.executed, strings.TrimSpace(verb+" "+cmd.Cmd.Text))
			return nil
		}
	}
	for _, verb := range []string{"north", "look", "note", "say"} {
		if err := f.handlers.Register(verb, record(verb)); err != nil {
			t.Fatalf("registering %s: %v", verb, err)
		}
	}

	p := NewProcessor(f.sessions, f.world, FieldsParser{}, f.handlers, f.engine, f.chars, f.pub, opts...)
	return f, p
}

func (f *fixture) attach(t *testing.T, name string) *session.Session {
	t.Helper()
	pl := game.NewPlayer(name, 0, "spawn")
	if err := f.world.AddPlayer(pl); err != nil {
		t.Fatalf("adding player: %v", err)
	}
	s := session.New()
	s.Player = pl
	if err := f.sessions.Add(s); err != nil {
		t.Fatalf("adding session: %v", err)
	}
	return s
}

func tick(t *testing.T, p *Processor) {
	t.Helper()
	if err := p.Tick(context.Background()); err != nil {
		t.Fatalf("tick: %v", err)
	}
}

func TestOneCommandPerTickFIFO(t *testing.T) {
	f, p := newFixture(t)
	s := f.attach(t, "Alice")

	s.Enqueue("note first")
	s.Enqueue("note second")
	s.Enqueue("note third")

	tick(t, p)
	testutil.AssertEqual(t, "after tick 1", len(f.executed), 1)

	tick(t, p)
	tick(t, p)

	want := []string{"note first", "note second", "note third"}
	testutil.AssertEqual(t, "executed count", len(f.executed), len(want))
	for i := range want {
		testutil.AssertEqual(t, "order", f.executed[i], want[i])
	}
}

func TestMultiCommandSplitAcrossTicks(t *testing.T) {
	f, p := newFixture(t)
	s := f.attach(t, "Alice")

	s.Enqueue("north;look")
	s.Enqueue("note later")

	tick(t, p)
	testutil.AssertEqual(t, "first sub-command only", len(f.executed), 1)
	testutil.AssertEqual(t, "north ran", f.executed[0], "north")

	// The remainder went to the queue front, ahead of "note later".
	tick(t, p)
	testutil.AssertEqual(t, "look ran second", f.executed[1], "look")

	tick(t, p)
	testutil.AssertEqual(t, "note ran last", f.executed[2], "note later")
}

func TestUnknownVerb(t *testing.T) {
	f, p := newFixture(t)
	s := f.attach(t, "Alice")
	s.Enqueue("dance")

	tick(t, p)

	msgs := f.pub.playerMessages("Alice")
	if len(msgs) == 0 || !strings.Contains(msgs[0], "Huh?") {
		t.Fatalf("expected Huh? message, got %v", msgs)
	}
}

func TestPanicIsolation(t *testing.T) {
	f, p := newFixture(t)
	if err := f.handlers.Register("explode", func(ctx context.Context, cmd *Context) error {
		panic("boom")
	}); err != nil {
		t.Fatalf("registering: %v", err)
	}

	a := f.attach(t, "Alice")
	b := f.attach(t, "Bob")
	a.Enqueue("explode")
	b.Enqueue("note fine")

	tick(t, p)

	// Bob's command still ran.
	testutil.AssertEqual(t, "bob processed", len(f.executed), 1)
	testutil.AssertEqual(t, "bob command", f.executed[0], "note fine")

	msgs := f.pub.playerMessages("Alice")
	if len(msgs) == 0 || !strings.Contains(msgs[0], "went wrong") {
		t.Fatalf("expected generic failure for Alice, got %v", msgs)
	}
}

func TestSleepingInterception(t *testing.T) {
	f, p := newFixture(t, WithHealTicks(1))
	s := f.attach(t, "Alice")
	s.Mode = session.ModeSleeping
	s.Player.Stamina = s.Player.MaxStamina - 3

	s.Enqueue("note ignored")
	tick(t, p)

	// The command was intercepted, not dispatched.
	testutil.AssertEqual(t, "nothing executed", len(f.executed), 0)
	msgs := f.pub.playerMessages("Alice")
	if len(msgs) == 0 || !strings.Contains(msgs[len(msgs)-1], "asleep") {
		t.Fatalf("expected asleep message, got %v", msgs)
	}

	s.Enqueue("wake")
	tick(t, p)
	testutil.AssertEqual(t, "awake again", s.Mode, session.ModeNormal)
}

func TestSleepHealingAndAutoWake(t *testing.T) {
	f, p := newFixture(t, WithHealTicks(1))
	s := f.attach(t, "Alice")
	s.Mode = session.ModeSleeping
	s.Player.Stamina = s.Player.MaxStamina - 2

	tick(t, p)
	testutil.AssertEqual(t, "healed one", s.Player.Stamina, s.Player.MaxStamina-1)
	testutil.AssertEqual(t, "still asleep", s.Mode, session.ModeSleeping)

	// Healing with an empty queue still emits the stat snapshot, so the
	// transport sees the regained stamina.
	testutil.AssertEqual(t, "snapshot count", len(f.pub.stats), 1)
	if !strings.Contains(f.pub.stats[0].data, `"stamina"`) {
		t.Fatalf("expected stamina in snapshot, got %q", f.pub.stats[0].data)
	}

	tick(t, p)
	testutil.AssertEqual(t, "fully rested", s.Player.Stamina, s.Player.MaxStamina)
	testutil.AssertEqual(t, "auto-woken", s.Mode, session.ModeNormal)
	testutil.AssertEqual(t, "snapshot per healing tick", len(f.pub.stats), 2)
}

func TestRespawnChoice(t *testing.T) {
	f, p := newFixture(t)
	s := f.attach(t, "Alice")
	s.Mode = session.ModeAwaitingRespawn
	s.Player.Health = 0
	s.Player.Room = "elsewhere"

	s.Enqueue("note ignored")
	tick(t, p)
	testutil.AssertEqual(t, "normal verb intercepted", len(f.executed), 0)
	testutil.AssertEqual(t, "still awaiting", s.Mode, session.ModeAwaitingRespawn)

	s.Enqueue("respawn")
	tick(t, p)
	testutil.AssertEqual(t, "back to normal", s.Mode, session.ModeNormal)
	testutil.AssertEqual(t, "healed", s.Player.Health, s.Player.MaxHealth)
	testutil.AssertEqual(t, "at spawn", s.Player.Room, "spawn")
}

func TestConverseRewrite(t *testing.T) {
	f, p := newFixture(t)
	s := f.attach(t, "Alice")
	s.Mode = session.ModeConverse

	s.Enqueue("hello everyone")
	tick(t, p)
	testutil.AssertEqual(t, "rewritten to say", f.executed[0], "say hello everyone")

	s.Enqueue("*")
	tick(t, p)
	testutil.AssertEqual(t, "converse off", s.Mode, session.ModeNormal)
}

func TestPasswordChangeFlow(t *testing.T) {
	f, p := newFixture(t)
	s := f.attach(t, "Alice")

	hash, err := bcrypt.GenerateFromPassword([]byte("oldpass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing: %v", err)
	}
	f.chars.records["alice"] = &game.Character{Name: "Alice", Password: string(hash)}

	s.Mode = session.ModePasswordChange
	s.PasswordStage = session.StageCurrent

	s.Enqueue("oldpass")
	tick(t, p)
	testutil.AssertEqual(t, "stage new", s.PasswordStage, session.StageNew)

	s.Enqueue("newpassword")
	tick(t, p)
	testutil.AssertEqual(t, "stage confirm", s.PasswordStage, session.StageConfirm)

	s.Enqueue("newpassword")
	tick(t, p)
	testutil.AssertEqual(t, "flow done", s.Mode, session.ModeNormal)
	testutil.AssertEqual(t, "record saved", len(f.chars.saved), 1)

	if bcrypt.CompareHashAndPassword([]byte(f.chars.records["alice"].Password), []byte("newpassword")) != nil {
		t.Fatal("stored hash does not match the new password")
	}
}

func TestPasswordChangeWrongCurrent(t *testing.T) {
	f, p := newFixture(t)
	s := f.attach(t, "Alice")

	hash, _ := bcrypt.GenerateFromPassword([]byte("oldpass"), bcrypt.MinCost)
	f.chars.records["alice"] = &game.Character{Name: "Alice", Password: string(hash)}

	s.Mode = session.ModePasswordChange
	s.PasswordStage = session.StageCurrent

	s.Enqueue("wrongpass")
	tick(t, p)

	testutil.AssertEqual(t, "flow aborted", s.Mode, session.ModeNormal)
	testutil.AssertEqual(t, "nothing saved", len(f.chars.saved), 0)
}

func TestDisconnectFinalization(t *testing.T) {
	f, p := newFixture(t)
	s := f.attach(t, "Alice")
	f.chars.records["alice"] = &game.Character{Name: "Alice"}

	s.Player.Points = 1234
	s.Mode = session.ModeDisconnecting
	s.Enqueue("note never")

	tick(t, p)

	testutil.AssertEqual(t, "queued command dropped", len(f.executed), 0)
	testutil.AssertEqual(t, "session removed", f.sessions.Len(), 0)
	testutil.AssertEqual(t, "player removed", f.world.Player("Alice") == nil, true)
	testutil.AssertEqual(t, "encounter released", len(f.engine.disconnected), 1)
	testutil.AssertEqual(t, "points persisted", f.chars.records["alice"].Points, 1234)
}

func TestInactivityReset(t *testing.T) {
	// The registry stamps activity with the wall clock, so the injected
	// clock starts there too.
	now := time.Now()
	resetter := &recordingResetter{}

	f, p := newFixture(t,
		WithClock(func() time.Time { return now }),
		WithInactivityLimit(time.Hour),
		WithResetter(resetter),
	)
	f.attach(t, "Alice")

	tick(t, p)
	testutil.AssertEqual(t, "no reset yet", resetter.calls, 0)

	now = now.Add(2 * time.Hour)
	tick(t, p)
	testutil.AssertEqual(t, "reset fired", resetter.calls, 1)
}
