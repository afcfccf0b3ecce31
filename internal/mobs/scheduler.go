package mobs

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/thornvale/mud/internal/combat"
	"github.com/thornvale/mud/internal/display"
	"github.com/thornvale/mud/internal/game"
)

// DefaultMoveChance is the per-tick probability a wandering mob even
// considers moving. It is deliberately well below 1 so mobs don't churn
// between rooms at tick rate.
const DefaultMoveChance = 0.15

// Engager is the slice of the combat engine the scheduler needs.
type Engager interface {
	Engage(attacker, defender combat.Combatant) (*combat.Encounter, error)
	IsEngaged(id string) bool
}

// Scheduler advances NPC movement and aggression once per tick. Mobs
// participating in an encounter take no action until it resolves.
type Scheduler struct {
	world  *game.World
	engine Engager
	pub    game.Publisher

	moveChance float64
	pick       func(n int) int
	chance     func() float64
}

// NewScheduler creates a scheduler over the shared world state.
func NewScheduler(world *game.World, engine Engager, pub game.Publisher, opts ...SchedulerOpt) *Scheduler {
	s := &Scheduler{
		world:      world,
		engine:     engine,
		pub:        pub,
		moveChance: DefaultMoveChance,
		pick:       rand.IntN,
		chance:     rand.Float64,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Tick applies one behavior step to every mob not currently engaged.
func (s *Scheduler) Tick(ctx context.Context) error {
	for _, m := range s.world.Mobs() {
		if !m.Alive() || m.InCombat || s.engine.IsEngaged(combat.MobID(m.ID)) {
			continue
		}

		switch m.Behavior {
		case game.BehaviorStationary:
			// Nothing to do.
		case game.BehaviorWandering:
			s.wander(m)
		case game.BehaviorAggressive:
			if !s.aggress(m) {
				s.wander(m)
			}
		}
	}

	return nil
}

// wander moves the mob through a uniformly random exit of its room, with
// staying put as one of the choices.
func (s *Scheduler) wander(m *game.Mob) {
	if s.chance() >= s.moveChance {
		return
	}

	r := s.world.Room(m.Room)
	if r == nil {
		slog.Warn("mob in unknown room", "mob", m.Name, "room", m.Room)
		return
	}

	dirs := r.ExitDirections()
	// Index len(dirs) means staying put.
	i := s.pick(len(dirs) + 1)
	if i == len(dirs) {
		return
	}

	dir := dirs[i]
	from, to := m.Room, r.Exits[dir]
	if s.world.Room(to) == nil {
		slog.Warn("mob exit leads nowhere", "mob", m.Name, "room", from, "direction", dir)
		return
	}

	m.Room = to
	s.sendRoom(from, fmt.Sprintf("%s leaves.", display.Capitalize("the "+m.Name)))
	s.sendRoom(to, fmt.Sprintf("%s arrives.", display.Capitalize("the "+m.Name)))
}

// aggress scans the mob's room for an eligible player target and engages
// it through the combat engine's creation path. Reports whether an
// encounter was created.
func (s *Scheduler) aggress(m *game.Mob) bool {
	for _, p := range s.world.PlayersInRoom(m.Room) {
		if !p.Alive() || p.InCombat || s.engine.IsEngaged(combat.PlayerID(p.Name)) {
			continue
		}

		_, err := s.engine.Engage(&combat.MobCombatant{Mob: m}, &combat.PlayerCombatant{Player: p})
		if err != nil {
			slog.Warn("mob engage rejected", "mob", m.Name, "target", p.Name, "error", err)
			continue
		}

		s.sendRoom(m.Room, fmt.Sprintf("%s attacks %s!", display.Capitalize("the "+m.Name), p.Name))
		return true
	}
	return false
}

func (s *Scheduler) sendRoom(room, msg string) {
	if err := s.pub.PublishToRoom(room, []byte(msg)); err != nil {
		slog.Warn("publishing mob action", "room", room, "error", err)
	}
}
