package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/thornvale/mud/internal/combat"
	"github.com/thornvale/mud/internal/game"
	"github.com/thornvale/mud/internal/session"
	"github.com/thornvale/mud/internal/storage"
)

const (
	// CommandSeparator splits a multi-command line. The first
	// sub-command executes immediately; the remainder go back to the
	// front of the queue so each one consumes its own tick.
	CommandSeparator = ";"

	// DefaultInactivityLimit is how long all sessions may be idle before
	// the world resetter fires.
	DefaultInactivityLimit = time.Hour

	// DefaultHealTicks is the number of slept ticks per stamina point.
	DefaultHealTicks = 6

	// MinPasswordLength guards the password-change flow.
	MinPasswordLength = 4
)

// WorldResetter is the external collaborator invoked when every session
// has been idle past the inactivity limit.
type WorldResetter interface {
	Reset(ctx context.Context) error
}

// NoopResetter does nothing. Used until a content generator hooks in.
type NoopResetter struct{}

func (NoopResetter) Reset(context.Context) error { return nil }

// Engine is the slice of the combat engine the processor needs.
type Engine interface {
	Disconnect(id string)
}

// Processor is the per-tick command queue consumer. For each session it
// either intercepts the front of the queue for the session's special
// mode or dequeues and dispatches one normal command; at most one queue
// entry is consumed per session per tick.
type Processor struct {
	sessions *session.Registry
	world    *game.World
	parser   Parser
	handlers *Registry
	engine   Engine
	chars    storage.Storer[*game.Character]
	pub      game.Publisher
	resetter WorldResetter

	now             func() time.Time
	inactivityLimit time.Duration
	healTicks       int
}

// NewProcessor creates a processor over the shared session registry.
func NewProcessor(sessions *session.Registry, world *game.World, parser Parser, handlers *Registry,
	engine Engine, chars storage.Storer[*game.Character], pub game.Publisher, opts ...ProcessorOpt) *Processor {
	p := &Processor{
		sessions:        sessions,
		world:           world,
		parser:          parser,
		handlers:        handlers,
		engine:          engine,
		chars:           chars,
		pub:             pub,
		resetter:        NoopResetter{},
		now:             time.Now,
		inactivityLimit: DefaultInactivityLimit,
		healTicks:       DefaultHealTicks,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Tick processes one command (or interception) per connected session, in
// connect order, plus the global inactivity check and sleep recovery.
func (p *Processor) Tick(ctx context.Context) error {
	p.checkInactivity(ctx)

	p.sessions.ForEach(func(s *session.Session) {
		p.processSession(ctx, s)
	})

	return nil
}

// checkInactivity triggers the world-reset collaborator when no session
// has enqueued a command for the inactivity limit.
func (p *Processor) checkInactivity(ctx context.Context) {
	if p.sessions.Len() == 0 {
		return
	}
	if p.now().Sub(p.sessions.LastActivity()) < p.inactivityLimit {
		return
	}

	slog.InfoContext(ctx, "global inactivity limit reached, resetting world")
	if err := p.resetter.Reset(ctx); err != nil {
		slog.ErrorContext(ctx, "world reset failed", "error", err)
	}
	p.sessions.MarkActivity()
}

// processSession handles one session for one tick. A panicking handler
// is caught here: the fault is logged, the player gets a generic
// failure, and no other session is affected.
func (p *Processor) processSession(ctx context.Context, s *session.Session) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "session processing panicked", "session", s.ID, "panic", r)
			if s.Player != nil {
				p.send(s.Player.Name, "Something went wrong processing your command.")
			}
		}
	}()

	// Not attached yet; the external authentication flow still owns it.
	if s.Player == nil {
		return
	}

	// Disconnect-pending outranks everything and consumes no queue entry.
	if s.Mode == session.ModeDisconnecting {
		p.finalizeDisconnect(ctx, s)
		return
	}

	// Sleeping sessions heal before any queue work; their stat snapshot
	// still goes out even when nothing is queued.
	healed := false
	if s.Mode == session.ModeSleeping {
		p.healSleeper(s)
		healed = true
	}

	raw, ok := s.Dequeue()
	if !ok || strings.TrimSpace(raw) == "" {
		if healed {
			p.sendStats(s)
		}
		return
	}
	raw = strings.TrimSpace(raw)

	// Interception precedence is fixed; the session's single mode means
	// at most one branch can claim the command.
	switch s.Mode {
	case session.ModeAwaitingRespawn:
		p.respawnChoice(s, raw)
	case session.ModePasswordChange:
		p.passwordStage(s, raw)
	case session.ModePendingInput:
		p.pendingInput(ctx, s, raw)
	case session.ModeSleeping:
		p.sleepingCommand(ctx, s, raw)
	case session.ModeConverse:
		p.converseCommand(ctx, s, raw)
	default:
		p.dispatch(ctx, s, raw)
	}

	p.sendStats(s)
}

// dispatch runs one normal command: split multi-commands, parse, resolve
// the verb, execute the handler.
func (p *Processor) dispatch(ctx context.Context, s *session.Session, raw string) {
	if strings.Contains(raw, CommandSeparator) {
		parts := splitCommands(raw)
		if len(parts) == 0 {
			return
		}
		if len(parts) > 1 {
			s.PushFront(parts[1:]...)
		}
		raw = parts[0]
	}

	cmd, err := p.parser.Parse(raw)
	if err != nil || cmd == nil {
		p.send(s.Player.Name, "Huh? I didn't understand that.")
		return
	}

	fn, ok := p.handlers.Resolve(cmd.Verb)
	if !ok {
		p.send(s.Player.Name, fmt.Sprintf("Huh? I don't know how to '%s'.", cmd.Verb))
		return
	}

	err = fn(ctx, &Context{
		Session:  s,
		Player:   s.Player,
		World:    p.world,
		Sessions: p.sessions,
		Pub:      p.pub,
		Cmd:      cmd,
	})
	if err != nil {
		if userErr, ok := err.(*UserError); ok {
			p.send(s.Player.Name, userErr.Message)
			return
		}
		slog.ErrorContext(ctx, "command failed", "player", s.Player.Name, "verb", cmd.Verb, "error", err)
		p.send(s.Player.Name, "Something went wrong processing your command.")
	}
}

// splitCommands splits a raw line on the separator, dropping empties.
func splitCommands(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, CommandSeparator) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// respawnChoice consumes the defeated player's answer to the
// respawn-or-disconnect offer.
func (p *Processor) respawnChoice(s *session.Session, raw string) {
	switch strings.ToLower(raw) {
	case "respawn", "r":
		pl := s.Player
		pl.Health = pl.MaxHealth
		pl.Room = p.world.SpawnRoom()
		s.Mode = session.ModeNormal

		msg := "You awaken, sore but alive."
		if r := p.world.Room(pl.Room); r != nil {
			msg += fmt.Sprintf("\n\n%s\n%s", r.Name, r.Description)
		}
		p.send(pl.Name, msg)

	case "disconnect", "quit", "q":
		s.Mode = session.ModeDisconnecting
		p.send(s.Player.Name, "Goodbye!")

	default:
		p.send(s.Player.Name, "Type 'respawn' to carry on, or 'disconnect' to leave.")
	}
}

// passwordStage consumes one entry of the staged password-change flow.
func (p *Processor) passwordStage(s *session.Session, raw string) {
	name := strings.ToLower(s.Player.Name)
	char := p.chars.Get(name)
	if char == nil {
		s.Mode = session.ModeNormal
		p.send(s.Player.Name, "Your character record could not be found.")
		return
	}

	switch s.PasswordStage {
	case session.StageCurrent:
		if bcrypt.CompareHashAndPassword([]byte(char.Password), []byte(raw)) != nil {
			s.Mode = session.ModeNormal
			p.send(s.Player.Name, "Incorrect password.")
			return
		}
		s.PasswordStage = session.StageNew
		p.send(s.Player.Name, "Enter your new password:")

	case session.StageNew:
		if len(raw) < MinPasswordLength {
			p.send(s.Player.Name, fmt.Sprintf("Passwords must be at least %d characters. Try again:", MinPasswordLength))
			return
		}
		s.NewPassword = raw
		s.PasswordStage = session.StageConfirm
		p.send(s.Player.Name, "Retype it to confirm:")

	case session.StageConfirm:
		newPassword := s.NewPassword
		s.NewPassword = ""
		s.Mode = session.ModeNormal
		if raw != newPassword {
			p.send(s.Player.Name, "Passwords do not match. Nothing changed.")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			slog.Error("hashing password", "player", s.Player.Name, "error", err)
			p.send(s.Player.Name, "Something went wrong. Nothing changed.")
			return
		}
		char.Password = string(hash)
		if err := p.chars.Save(name, char); err != nil {
			slog.Error("saving character", "player", s.Player.Name, "error", err)
			p.send(s.Player.Name, "Something went wrong. Nothing changed.")
			return
		}
		p.send(s.Player.Name, "Password changed.")
	}
}

// pendingInput consumes the entry as the message body of the shout or
// tell that asked for it, then re-dispatches the completed command.
func (p *Processor) pendingInput(ctx context.Context, s *session.Session, raw string) {
	pending := s.Pending
	s.Pending = nil
	s.Mode = session.ModeNormal

	if pending == nil {
		return
	}

	switch pending.Kind {
	case session.PendingShout:
		p.dispatch(ctx, s, "shout "+raw)
	case session.PendingTell:
		p.dispatch(ctx, s, fmt.Sprintf("tell %s %s", pending.Recipient, raw))
	}
}

// sleepingCommand lets only a wake command through.
func (p *Processor) sleepingCommand(ctx context.Context, s *session.Session, raw string) {
	switch strings.ToLower(raw) {
	case "wake", "awake":
		s.Mode = session.ModeNormal
		s.SleepTicks = 0
		p.send(s.Player.Name, "You wake up and stretch.")
	default:
		p.send(s.Player.Name, "You are asleep.")
	}
}

// converseCommand rewrites bare text as a say; a '*' or '>' prefix
// leaves converse mode.
func (p *Processor) converseCommand(ctx context.Context, s *session.Session, raw string) {
	if strings.HasPrefix(raw, "*") || strings.HasPrefix(raw, ">") {
		s.Mode = session.ModeNormal
		p.send(s.Player.Name, "Converse mode OFF.")
		return
	}
	p.dispatch(ctx, s, "say "+raw)
}

// healSleeper advances sleep recovery: one stamina point per healing
// interval, waking the player automatically at full stamina.
func (p *Processor) healSleeper(s *session.Session) {
	s.SleepTicks++
	if s.SleepTicks < p.healTicks {
		return
	}
	s.SleepTicks = 0

	pl := s.Player
	if pl.RestoreStamina(1) {
		s.Mode = session.ModeNormal
		p.send(pl.Name, fmt.Sprintf("You are too alert to sleep any more! You wake up.\nYour stamina is now %d.", pl.Stamina))
		return
	}
	p.send(pl.Name, "ZZZzzz...")
}

// finalizeDisconnect removes the session from the round-robin, discards
// its queued commands, resolves any encounter as a flee, and persists
// the character.
func (p *Processor) finalizeDisconnect(ctx context.Context, s *session.Session) {
	pl := s.Player
	s.ClearQueue()

	p.engine.Disconnect(combat.PlayerID(pl.Name))

	name := strings.ToLower(pl.Name)
	if char := p.chars.Get(name); char != nil {
		char.Points = pl.Points
		char.LastRoom = pl.Room
		if err := p.chars.Save(name, char); err != nil {
			slog.ErrorContext(ctx, "saving character on disconnect", "player", pl.Name, "error", err)
		}
	}

	room := pl.Room
	if err := p.world.RemovePlayer(pl.Name); err != nil {
		slog.WarnContext(ctx, "removing player from world", "player", pl.Name, "error", err)
	}
	p.sessions.Remove(s.ID)

	if err := p.pub.PublishToRoom(room, []byte(fmt.Sprintf("%s has left the world.", pl.Name)), pl.Name); err != nil {
		slog.WarnContext(ctx, "publishing departure", "room", room, "error", err)
	}
}

// sendStats publishes the out-of-band stat snapshot after processing.
func (p *Processor) sendStats(s *session.Session) {
	if s.Player == nil {
		return
	}
	pl := s.Player
	data, err := json.Marshal(map[string]int{
		"health":  pl.Health,
		"stamina": pl.Stamina,
		"points":  pl.Points,
	})
	if err != nil {
		return
	}
	if err := p.pub.PublishStats(pl.Name, data); err != nil {
		slog.Warn("publishing stats", "player", pl.Name, "error", err)
	}
}

func (p *Processor) send(player, msg string) {
	if err := p.pub.PublishToPlayer(player, []byte(msg)); err != nil {
		slog.Warn("publishing to player", "player", player, "error", err)
	}
}
