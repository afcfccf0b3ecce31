package combat

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/thornvale/mud/internal/game"
	"github.com/thornvale/mud/internal/session"
)

const (
	// DefeatStaminaFloor is what a defeated combatant's stamina resets to.
	DefeatStaminaFloor = 10

	// FleePointsDivisor: fleeing costs points/divisor points.
	FleePointsDivisor = 20
)

// OutcomeHandler implements EventHandler with the game-level
// consequences of a resolution: inventory drops, relocation, the
// respawn/disconnect offer, and point awards.
type OutcomeHandler struct {
	world    *game.World
	sessions *session.Registry
	pub      game.Publisher
	pick     func(n int) int
}

// NewOutcomeHandler creates a handler over the shared world state.
func NewOutcomeHandler(world *game.World, sessions *session.Registry, pub game.Publisher) *OutcomeHandler {
	return &OutcomeHandler{
		world:    world,
		sessions: sessions,
		pub:      pub,
		pick:     rand.IntN,
	}
}

func (h *OutcomeHandler) OnDefeat(loser, winner Combatant, room string) {
	switch v := loser.(type) {
	case *PlayerCombatant:
		h.onPlayerDefeat(v, winner, room)
	case *MobCombatant:
		h.onMobDefeat(v, winner, room)
	}
}

func (h *OutcomeHandler) onPlayerDefeat(pc *PlayerCombatant, winner Combatant, room string) {
	p := pc.Player
	h.dropInventory(p.Inventory, room)
	p.Stamina = DefeatStaminaFloor

	// Defeat costs no points or rank; only the inventory is lost.
	s := h.sessions.ByPlayer(p.Name)
	if s != nil {
		s.Mode = session.ModeAwaitingRespawn
		s.ClearQueue()
	}

	h.send(p.Name, fmt.Sprintf(
		"%s has defeated you! All your items fall to the ground.\nType 'respawn' to carry on, or 'disconnect' to leave.",
		winner.CombatName()))
	h.sendRoom(room, fmt.Sprintf("%s has defeated %s!", winner.CombatName(), p.Name), p.Name, winner.CombatName())
	if wc, ok := winner.(*PlayerCombatant); ok {
		h.send(wc.Player.Name, fmt.Sprintf("You have defeated %s!", p.Name))
	}
}

func (h *OutcomeHandler) onMobDefeat(mc *MobCombatant, winner Combatant, room string) {
	m := mc.Mob
	h.dropInventory(m.Inventory, room)
	h.world.RemoveMob(m.ID)

	h.sendRoom(room, fmt.Sprintf("The %s is dead!", m.Name), winner.CombatName())

	wc, ok := winner.(*PlayerCombatant)
	if !ok {
		return
	}

	msg := fmt.Sprintf("You have slain the %s!", m.Name)
	if m.PointValue > 0 {
		ranked := wc.Player.AddPoints(m.PointValue)
		msg += fmt.Sprintf(" You earn %d points.", m.PointValue)
		if ranked {
			msg += fmt.Sprintf("\nYour level of experience is now %s.", wc.Player.Rank())
		}
	}
	h.send(wc.Player.Name, msg)
}

func (h *OutcomeHandler) OnFlee(fleeing, opponent Combatant, room, direction string, quiet bool) {
	r := h.world.Room(room)
	if r == nil {
		slog.Warn("flee from unknown room", "room", room)
		return
	}

	switch v := fleeing.(type) {
	case *PlayerCombatant:
		p := v.Player
		h.dropInventory(p.Inventory, room)

		lost := p.Points / FleePointsDivisor
		p.AddPoints(-lost)

		if quiet {
			return
		}

		dir, dest := h.fleeExit(r, direction)
		if dest == "" {
			// Nowhere to go; the encounter is already resolved.
			h.send(p.Name, "You look for an escape, but there is nowhere to run!")
			return
		}

		h.sendRoom(room, fmt.Sprintf("%s has fled %s!", p.Name, dir), p.Name)
		p.Room = dest
		h.sendRoom(dest, fmt.Sprintf("%s runs in, panting heavily!", p.Name), p.Name)
		h.send(p.Name, fmt.Sprintf(
			"You flee %s, dropping all your items and losing %d points!", dir, lost))

	case *MobCombatant:
		m := v.Mob
		h.dropInventory(m.Inventory, room)
		if quiet {
			return
		}
		dir, dest := h.fleeExit(r, direction)
		if dest == "" {
			return
		}
		h.sendRoom(room, fmt.Sprintf("The %s flees %s!", m.Name, dir))
		m.Room = dest
	}
}

// fleeExit resolves the exit to flee through. A requested direction wins
// when it exists; otherwise one is picked pseudo-randomly.
func (h *OutcomeHandler) fleeExit(r *game.Room, direction string) (string, string) {
	if direction != "" {
		if dest, ok := r.Exits[direction]; ok {
			return direction, dest
		}
	}
	dirs := r.ExitDirections()
	if len(dirs) == 0 {
		return "", ""
	}
	dir := dirs[h.pick(len(dirs))]
	return dir, r.Exits[dir]
}

func (h *OutcomeHandler) dropInventory(inv *game.Inventory, room string) {
	r := h.world.Room(room)
	if r == nil || inv == nil {
		return
	}
	for _, item := range inv.RemoveAll() {
		r.AddItem(item)
	}
}

func (h *OutcomeHandler) send(player string, msg string) {
	if err := h.pub.PublishToPlayer(player, []byte(msg)); err != nil {
		slog.Warn("publishing to player", "player", player, "error", err)
	}
}

func (h *OutcomeHandler) sendRoom(room, msg string, exclude ...string) {
	if err := h.pub.PublishToRoom(room, []byte(msg), exclude...); err != nil {
		slog.Warn("publishing to room", "room", room, "error", err)
	}
}
