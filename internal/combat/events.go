package combat

// EventHandler handles encounter resolutions that require game-level
// logic: inventory drops, relocation, respawn offers, point awards.
type EventHandler interface {
	// OnDefeat fires when a side's health reaches zero. The encounter is
	// already Resolved.
	OnDefeat(loser, winner Combatant, room string)

	// OnFlee fires when a side flees. direction is the exit taken; quiet
	// suppresses relocation and messaging (used for disconnects, which
	// are treated as fleeing).
	OnFlee(fleeing, opponent Combatant, room, direction string, quiet bool)
}
