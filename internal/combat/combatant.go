package combat

import (
	"fmt"

	"github.com/thornvale/mud/internal/game"
)

// Combatant is anything that can be a side of an encounter.
type Combatant interface {
	CombatID() string
	CombatName() string
	Level() int
	WeaponPower() int
	Armor() int
	Health() int
	Stamina() int
	ApplyDamage(int)
	DrainStamina(int)
	Alive() bool
	RoomID() string
	SetInCombat(bool)
}

// PlayerCombatant adapts a Player for the combat engine.
type PlayerCombatant struct {
	Player *game.Player
}

func (c *PlayerCombatant) CombatID() string   { return fmt.Sprintf("player:%s", c.Player.Name) }
func (c *PlayerCombatant) CombatName() string { return c.Player.Name }
func (c *PlayerCombatant) Level() int         { return c.Player.Level() }
func (c *PlayerCombatant) WeaponPower() int   { return c.Player.WeaponPower }
func (c *PlayerCombatant) Armor() int         { return c.Player.Armor }
func (c *PlayerCombatant) Health() int        { return c.Player.Health }
func (c *PlayerCombatant) Stamina() int       { return c.Player.Stamina }
func (c *PlayerCombatant) ApplyDamage(n int)  { c.Player.ApplyDamage(n) }
func (c *PlayerCombatant) DrainStamina(n int) { c.Player.DrainStamina(n) }
func (c *PlayerCombatant) Alive() bool        { return c.Player.Alive() }
func (c *PlayerCombatant) RoomID() string     { return c.Player.Room }
func (c *PlayerCombatant) SetInCombat(v bool) { c.Player.InCombat = v }

// MobCombatant adapts a Mob for the combat engine.
type MobCombatant struct {
	Mob *game.Mob
}

func (c *MobCombatant) CombatID() string   { return fmt.Sprintf("mob:%s", c.Mob.ID) }
func (c *MobCombatant) CombatName() string { return c.Mob.Name }
func (c *MobCombatant) Level() int         { return c.Mob.Level }
func (c *MobCombatant) WeaponPower() int   { return c.Mob.WeaponPower }
func (c *MobCombatant) Armor() int         { return c.Mob.Armor }
func (c *MobCombatant) Health() int        { return c.Mob.Health }
func (c *MobCombatant) Stamina() int       { return c.Mob.Stamina }
func (c *MobCombatant) ApplyDamage(n int)  { c.Mob.ApplyDamage(n) }
func (c *MobCombatant) DrainStamina(n int) { c.Mob.DrainStamina(n) }
func (c *MobCombatant) Alive() bool        { return c.Mob.Alive() }
func (c *MobCombatant) RoomID() string     { return c.Mob.Room }
func (c *MobCombatant) SetInCombat(v bool) { c.Mob.InCombat = v }

// PlayerID returns the combat id for a player name.
func PlayerID(name string) string {
	return fmt.Sprintf("player:%s", name)
}

// MobID returns the combat id for a mob instance id.
func MobID(id string) string {
	return fmt.Sprintf("mob:%s", id)
}
