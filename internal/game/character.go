package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Character is the persisted subset of a player, stored through the
// storage layer. Runtime state lives on Player; this survives
// disconnects.
type Character struct {
	Name     string `json:"name"`
	Password string `json:"password"` // bcrypt hash
	Points   int    `json:"points"`
	LastRoom string `json:"last_room,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (c *Character) Validate() error {
	el := errors.NewErrorList()

	if c.Name == "" {
		el.Add(fmt.Errorf("character name is required"))
	}
	if c.Points < 0 {
		el.Add(fmt.Errorf("points must not be negative"))
	}

	return el.Err()
}
