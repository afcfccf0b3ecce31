package game

// Behavior selects how the mob scheduler drives a mob each tick.
type Behavior int

const (
	BehaviorStationary Behavior = iota
	BehaviorWandering
	BehaviorAggressive
)

func (b Behavior) String() string {
	switch b {
	case BehaviorStationary:
		return "stationary"
	case BehaviorWandering:
		return "wandering"
	case BehaviorAggressive:
		return "aggressive"
	default:
		return "unknown"
	}
}

// Mob is the runtime record for one spawned NPC. Created at world
// generation, mutated by the mob scheduler and the combat engine,
// removed on death.
type Mob struct {
	ID   string
	Name string
	Room string

	Behavior Behavior

	Level       int
	WeaponPower int
	Armor       int
	Health      int
	MaxHealth   int
	Stamina     int
	MaxStamina  int

	// PointValue is awarded to the player that defeats this mob.
	PointValue int

	Inventory *Inventory
	InCombat  bool
}

// Alive reports whether the mob has health remaining.
func (m *Mob) Alive() bool {
	return m.Health > 0
}

// ApplyDamage reduces health, clamping at zero.
func (m *Mob) ApplyDamage(dmg int) {
	m.Health -= dmg
	if m.Health < 0 {
		m.Health = 0
	}
}

// DrainStamina reduces stamina, clamping at zero.
func (m *Mob) DrainStamina(n int) {
	m.Stamina -= n
	if m.Stamina < 0 {
		m.Stamina = 0
	}
}
