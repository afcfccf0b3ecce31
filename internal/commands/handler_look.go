package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/thornvale/mud/internal/dispatch"
	"github.com/thornvale/mud/internal/display"
)

// Look shows the player's current room.
func (s *Set) Look(ctx context.Context, cmd *dispatch.Context) error {
	view, err := s.renderRoom(cmd)
	if err != nil {
		return err
	}
	return send(cmd, view)
}

// renderRoom builds the standard room view: name, description, exits,
// items on the ground, and other occupants.
func (s *Set) renderRoom(cmd *dispatch.Context) (string, error) {
	r := cmd.World.Room(cmd.Player.Room)
	if r == nil {
		return "", fmt.Errorf("player %s in unknown room %q", cmd.Player.Name, cmd.Player.Room)
	}

	var b strings.Builder
	b.WriteString(r.Name)
	b.WriteString("\n")
	b.WriteString(display.Wrap(r.Description))

	if exits := r.ExitDirections(); len(exits) > 0 {
		b.WriteString(fmt.Sprintf("\nExits: %s.", strings.Join(exits, ", ")))
	} else {
		b.WriteString("\nThere are no obvious exits.")
	}

	if len(r.Items) > 0 {
		names := make([]string, 0, len(r.Items))
		for _, item := range r.Items {
			names = append(names, item.Name)
		}
		b.WriteString(fmt.Sprintf("\nYou see: %s.", strings.Join(names, ", ")))
	}

	for _, other := range cmd.World.PlayersInRoom(cmd.Player.Room) {
		if other.Name == cmd.Player.Name {
			continue
		}
		b.WriteString(fmt.Sprintf("\n%s the %s is here.", other.Name, other.Rank()))
	}

	for _, mob := range cmd.World.MobsInRoom(cmd.Player.Room) {
		b.WriteString(fmt.Sprintf("\n%s is here.", display.Capitalize("the "+mob.Name)))
	}

	return b.String(), nil
}
