package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/thornvale/mud/internal/dispatch"
	"github.com/thornvale/mud/internal/game"
)

// Inventory lists everything the player carries.
func (s *Set) Inventory(ctx context.Context, cmd *dispatch.Context) error {
	items := cmd.Player.Inventory.Items()
	if len(items) == 0 {
		return send(cmd, "You are carrying nothing.")
	}

	var b strings.Builder
	b.WriteString("You are carrying:")
	for _, item := range items {
		fmt.Fprintf(&b, "\n  %s", item.Name)
	}
	return send(cmd, b.String())
}

// Get picks up a named item from the room.
func (s *Set) Get(ctx context.Context, cmd *dispatch.Context) error {
	if len(cmd.Cmd.Args) == 0 {
		return dispatch.NewUserError("Get what?")
	}
	name := strings.ToLower(strings.Join(cmd.Cmd.Args, " "))

	r := cmd.World.Room(cmd.Player.Room)
	if r == nil {
		return fmt.Errorf("player %s in unknown room %q", cmd.Player.Name, cmd.Player.Room)
	}

	item := r.RemoveItem(name)
	if item == nil {
		return dispatch.NewUserError(fmt.Sprintf("There is no '%s' here.", name))
	}
	cmd.Player.Inventory.Add(item)
	applyGear(cmd)

	if err := sendRoom(cmd, fmt.Sprintf("%s picks up %s.", cmd.Player.Name, item.Name), cmd.Player.Name); err != nil {
		return err
	}
	return send(cmd, fmt.Sprintf("You pick up %s.", item.Name))
}

// Drop puts a carried item down in the room.
func (s *Set) Drop(ctx context.Context, cmd *dispatch.Context) error {
	if len(cmd.Cmd.Args) == 0 {
		return dispatch.NewUserError("Drop what?")
	}
	name := strings.ToLower(strings.Join(cmd.Cmd.Args, " "))

	item := cmd.Player.Inventory.Remove(name)
	if item == nil {
		return dispatch.NewUserError(fmt.Sprintf("You are not carrying a '%s'.", name))
	}

	r := cmd.World.Room(cmd.Player.Room)
	if r == nil {
		return fmt.Errorf("player %s in unknown room %q", cmd.Player.Name, cmd.Player.Room)
	}
	r.AddItem(item)
	applyGear(cmd)

	if err := sendRoom(cmd, fmt.Sprintf("%s drops %s.", cmd.Player.Name, item.Name), cmd.Player.Name); err != nil {
		return err
	}
	return send(cmd, fmt.Sprintf("You drop %s.", item.Name))
}

// applyGear recomputes weapon power and armor from the carried items:
// best weapon wins, armor stacks.
func applyGear(cmd *dispatch.Context) {
	pl := cmd.Player
	pl.WeaponPower = game.UnarmedWeaponPower
	pl.Armor = 0
	for _, item := range pl.Inventory.Items() {
		if item.WeaponPower > pl.WeaponPower {
			pl.WeaponPower = item.WeaponPower
		}
		pl.Armor += item.Armor
	}
}
