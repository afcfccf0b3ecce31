package combat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/thornvale/mud/internal/game"
)

var (
	ErrAlreadyEngaged = errors.New("already engaged in combat")
	ErrSelfAttack     = errors.New("cannot attack yourself")
	ErrNotEngaged     = errors.New("not in combat")
)

// DefaultInterval is the fixed cadence at which engaged encounters
// resolve rounds, independent of the scheduler's tick length.
const DefaultInterval = 3 * time.Second

// Engine owns all active encounters and advances them on its fixed
// interval. It is driven every tick; only encounters whose elapsed time
// has reached the interval actually resolve.
type Engine struct {
	pub     game.Publisher
	handler EventHandler

	// encounters maps each combatant id to its encounter; both sides
	// point at the same Encounter, enforcing one encounter per combatant.
	encounters map[string]*Encounter

	interval time.Duration
	variance int
	roll     func(n int) int
	chance   func() float64
	now      func() time.Time
}

// NewEngine creates an engine publishing through pub and delegating
// resolutions to handler.
func NewEngine(pub game.Publisher, handler EventHandler, opts ...EngineOpt) *Engine {
	e := &Engine{
		pub:        pub,
		handler:    handler,
		encounters: make(map[string]*Encounter),
		interval:   DefaultInterval,
		variance:   DefaultVariance,
		roll:       rand.IntN,
		chance:     rand.Float64,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// IsEngaged reports whether the combat id has an engaged encounter.
func (e *Engine) IsEngaged(id string) bool {
	_, ok := e.encounters[id]
	return ok
}

// EncounterFor returns the encounter a combatant is engaged in, or nil.
func (e *Engine) EncounterFor(id string) *Encounter {
	return e.encounters[id]
}

// Engage creates an Engaged encounter between attacker and defender.
// A combatant already engaged cannot be inserted into a second
// encounter; the attempt is rejected with a recoverable error, never
// silently ignored. The first round resolves one full interval after
// engagement; the attack acknowledgement is immediate.
func (e *Engine) Engage(attacker, defender Combatant) (*Encounter, error) {
	if attacker.CombatID() == defender.CombatID() {
		return nil, ErrSelfAttack
	}
	if e.IsEngaged(attacker.CombatID()) {
		return nil, fmt.Errorf("%s: %w", attacker.CombatName(), ErrAlreadyEngaged)
	}
	if e.IsEngaged(defender.CombatID()) {
		return nil, fmt.Errorf("%s: %w", defender.CombatName(), ErrAlreadyEngaged)
	}

	enc := &Encounter{
		ID:        uuid.New().String(),
		A:         attacker,
		B:         defender,
		Room:      attacker.RoomID(),
		LastRound: e.now(),
	}
	e.encounters[attacker.CombatID()] = enc
	e.encounters[defender.CombatID()] = enc
	attacker.SetInCombat(true)
	defender.SetInCombat(true)

	return enc, nil
}

// Flee resolves the combatant's encounter with outcome Fled. Available
// at any tick, not gated by the resolution interval. direction may be
// empty; the event handler then picks a pseudo-random exit.
func (e *Engine) Flee(id, direction string) error {
	enc, ok := e.encounters[id]
	if !ok {
		return ErrNotEngaged
	}

	fleeing := enc.A
	if enc.B.CombatID() == id {
		fleeing = enc.B
	}
	opponent := enc.Opponent(id)

	e.resolve(enc, OutcomeFled)
	e.handler.OnFlee(fleeing, opponent, enc.Room, direction, false)
	return nil
}

// Disconnect resolves any encounter the combatant is in as if it had
// fled, without relocation or messaging. No-op when not engaged.
func (e *Engine) Disconnect(id string) {
	enc, ok := e.encounters[id]
	if !ok {
		return
	}

	fleeing := enc.A
	if enc.B.CombatID() == id {
		fleeing = enc.B
	}
	opponent := enc.Opponent(id)

	e.resolve(enc, OutcomeFled)
	e.handler.OnFlee(fleeing, opponent, enc.Room, "", true)
}

// Tick advances every engaged encounter whose elapsed time since its
// last resolution has reached the fixed interval. Called every tick by
// the driver. A failure in one encounter does not affect the others.
func (e *Engine) Tick(ctx context.Context) error {
	now := e.now()

	for _, enc := range e.dueEncounters(now) {
		// Resolved between collection and now (e.g. by a flee).
		if enc.Status != StatusEngaged {
			continue
		}
		enc.LastRound = now
		e.resolveRound(ctx, enc)
	}

	return nil
}

// dueEncounters returns the unique engaged encounters due for a round.
func (e *Engine) dueEncounters(now time.Time) []*Encounter {
	seen := make(map[string]bool)
	var due []*Encounter
	for _, enc := range e.encounters {
		if seen[enc.ID] {
			continue
		}
		seen[enc.ID] = true
		if now.Sub(enc.LastRound) >= e.interval {
			due = append(due, enc)
		}
	}
	return due
}

// resolveRound resolves one strictly sequential round: each side strikes
// once, stamina drains, and a death resolves the encounter with outcome
// Defeat.
func (e *Engine) resolveRound(ctx context.Context, enc *Encounter) {
	e.strike(enc, enc.A, enc.B)
	if enc.B.Alive() {
		e.strike(enc, enc.B, enc.A)
	}

	enc.A.DrainStamina(StaminaCostPerRound)
	enc.B.DrainStamina(StaminaCostPerRound)

	var loser, winner Combatant
	switch {
	case !enc.B.Alive():
		loser, winner = enc.B, enc.A
	case !enc.A.Alive():
		loser, winner = enc.A, enc.B
	default:
		return
	}

	slog.InfoContext(ctx, "encounter resolved",
		"encounter", enc.ID, "loser", loser.CombatName(), "winner", winner.CombatName())

	e.resolve(enc, OutcomeDefeat)
	e.handler.OnDefeat(loser, winner, enc.Room)
}

func (e *Engine) strike(enc *Encounter, attacker, defender Combatant) {
	var damage int
	if e.chance() < HitChance(attacker.Stamina()) {
		damage = Damage(attacker.Level(), attacker.WeaponPower(), defender.Armor(), e.roll(e.variance+1))
		defender.ApplyDamage(damage)
	}

	msg := fmt.Sprintf("%s %s %s!", attacker.CombatName(), DamageVerb(damage), defender.CombatName())
	if err := e.pub.PublishToRoom(enc.Room, []byte(msg)); err != nil {
		slog.Warn("publishing combat round", "room", enc.Room, "error", err)
	}
}

// resolve transitions the encounter to Resolved and drops both sides
// from the index.
func (e *Engine) resolve(enc *Encounter, outcome Outcome) {
	enc.Status = StatusResolved
	enc.Outcome = outcome
	enc.A.SetInCombat(false)
	enc.B.SetInCombat(false)
	delete(e.encounters, enc.A.CombatID())
	delete(e.encounters, enc.B.CombatID())
}
