package combat

import "time"

// Status is the encounter state machine: Engaged until one side dies,
// flees, or disconnects, then Resolved.
type Status int

const (
	StatusEngaged Status = iota
	StatusResolved
)

// Outcome records how an encounter resolved.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDefeat
	OutcomeFled
)

// Encounter is the unit of combat state between exactly two combatants.
// Rounds resolve at a fixed interval owned by the engine; LastRound
// gates resolution so a round fires at most once per elapsed interval.
type Encounter struct {
	ID        string
	A, B      Combatant
	Room      string
	LastRound time.Time
	Status    Status
	Outcome   Outcome
}

// Opponent returns the other side of the encounter.
func (e *Encounter) Opponent(id string) Combatant {
	if e.A.CombatID() == id {
		return e.B
	}
	return e.A
}

// Has reports whether the given combat id is a side of this encounter.
func (e *Encounter) Has(id string) bool {
	return e.A.CombatID() == id || e.B.CombatID() == id
}
