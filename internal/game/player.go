package game

// Player holds all mutable runtime state for one connected character.
// It is owned by the session that attached it and is only mutated inside
// the tick context.
type Player struct {
	Name string

	Points     int
	Health     int
	MaxHealth  int
	Stamina    int
	MaxStamina int

	// WeaponPower is the power of the currently readied weapon. Armor is
	// the summed protection of worn gear. Both are maintained by the
	// inventory handlers.
	WeaponPower int
	Armor       int

	Room      string
	Inventory *Inventory

	InCombat bool
}

// NewPlayer creates a player at the given room with stats for its points total.
func NewPlayer(name string, points int, room string) *Player {
	rank := RankFor(points)
	return &Player{
		Name:        name,
		Points:      points,
		Health:      rank.Stamina,
		MaxHealth:   rank.Stamina,
		Stamina:     rank.Stamina,
		MaxStamina:  rank.Stamina,
		WeaponPower: UnarmedWeaponPower,
		Room:        room,
		Inventory:   NewInventory(),
	}
}

// UnarmedWeaponPower is the weapon power used when nothing is wielded.
const UnarmedWeaponPower = 5

// Level returns the player's numeric level (1-based rank index).
func (p *Player) Level() int {
	return RankIndexFor(p.Points) + 1
}

// Rank returns the player's rank title.
func (p *Player) Rank() string {
	return RankFor(p.Points).Name
}

// Alive reports whether the player has health remaining.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// ApplyDamage reduces health, clamping at zero.
func (p *Player) ApplyDamage(dmg int) {
	p.Health -= dmg
	if p.Health < 0 {
		p.Health = 0
	}
}

// DrainStamina reduces stamina, clamping at zero.
func (p *Player) DrainStamina(n int) {
	p.Stamina -= n
	if p.Stamina < 0 {
		p.Stamina = 0
	}
}

// RestoreStamina adds stamina up to the maximum and reports whether the
// player is now fully rested.
func (p *Player) RestoreStamina(n int) bool {
	p.Stamina += n
	if p.Stamina >= p.MaxStamina {
		p.Stamina = p.MaxStamina
	}
	return p.Stamina == p.MaxStamina
}

// AddPoints adds points, clamping at zero, and reports whether the
// player's rank title changed.
func (p *Player) AddPoints(n int) bool {
	before := p.Rank()
	p.Points += n
	if p.Points < 0 {
		p.Points = 0
	}
	return p.Rank() != before
}
