package mobs

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pixil98/go-errors"
	"github.com/thornvale/mud/internal/game"
)

// Spec is a mob definition loaded from asset files; the world/content
// generator spawns runtime instances from it.
type Spec struct {
	Name        string       `json:"name"`
	Room        string       `json:"room"`
	Behavior    string       `json:"behavior"`
	Level       int          `json:"level"`
	WeaponPower int          `json:"weapon_power"`
	Armor       int          `json:"armor"`
	MaxHealth   int          `json:"max_health"`
	MaxStamina  int          `json:"max_stamina"`
	PointValue  int          `json:"point_value,omitempty"`
	Inventory   []*game.Item `json:"inventory,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (s *Spec) Validate() error {
	el := errors.NewErrorList()

	if s.Name == "" {
		el.Add(fmt.Errorf("mob name is required"))
	}
	if s.Room == "" {
		el.Add(fmt.Errorf("mob room is required"))
	}
	if _, err := ParseBehavior(s.Behavior); err != nil {
		el.Add(err)
	}
	if s.MaxHealth <= 0 {
		el.Add(fmt.Errorf("max_health must be positive"))
	}

	return el.Err()
}

// ParseBehavior maps a behavior string to its enum value.
func ParseBehavior(s string) (game.Behavior, error) {
	switch s {
	case "stationary":
		return game.BehaviorStationary, nil
	case "wandering":
		return game.BehaviorWandering, nil
	case "aggressive":
		return game.BehaviorAggressive, nil
	default:
		return 0, fmt.Errorf("unknown behavior %q", s)
	}
}

// Spawn creates a runtime mob from the spec and registers it in the world.
func Spawn(world *game.World, s *Spec) (*game.Mob, error) {
	behavior, err := ParseBehavior(s.Behavior)
	if err != nil {
		return nil, err
	}
	if world.Room(s.Room) == nil {
		return nil, fmt.Errorf("spawning %q: %w", s.Name, game.ErrRoomNotFound)
	}

	inv := game.NewInventory()
	for _, item := range s.Inventory {
		inv.Add(item)
	}

	m := &game.Mob{
		ID:          uuid.New().String(),
		Name:        s.Name,
		Room:        s.Room,
		Behavior:    behavior,
		Level:       s.Level,
		WeaponPower: s.WeaponPower,
		Armor:       s.Armor,
		Health:      s.MaxHealth,
		MaxHealth:   s.MaxHealth,
		Stamina:     s.MaxStamina,
		MaxStamina:  s.MaxStamina,
		PointValue:  s.PointValue,
		Inventory:   inv,
	}
	world.AddMob(m)
	return m, nil
}
