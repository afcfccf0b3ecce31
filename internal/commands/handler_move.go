package commands

import (
	"context"
	"fmt"

	"github.com/thornvale/mud/internal/dispatch"
)

// Go moves in the direction given as an argument.
func (s *Set) Go(ctx context.Context, cmd *dispatch.Context) error {
	if len(cmd.Cmd.Args) == 0 {
		return dispatch.NewUserError("Go where?")
	}
	return s.move(cmd, cmd.Cmd.Args[0])
}

// moveDir binds a bare direction verb to a move.
func (s *Set) moveDir(direction string) dispatch.HandlerFunc {
	return func(ctx context.Context, cmd *dispatch.Context) error {
		return s.move(cmd, direction)
	}
}

func (s *Set) move(cmd *dispatch.Context, direction string) error {
	pl := cmd.Player

	if pl.InCombat {
		return dispatch.NewUserError("You cannot just walk away from a fight! Try 'flee'.")
	}

	from := cmd.World.Room(pl.Room)
	if from == nil {
		return fmt.Errorf("player %s in unknown room %q", pl.Name, pl.Room)
	}

	dest, ok := from.Exits[direction]
	if !ok {
		return dispatch.NewUserError(fmt.Sprintf("You cannot go %s from here.", direction))
	}
	if cmd.World.Room(dest) == nil {
		return fmt.Errorf("room %q has exit %s to unknown room %q", pl.Room, direction, dest)
	}

	if err := sendRoom(cmd, fmt.Sprintf("%s leaves %s.", pl.Name, direction), pl.Name); err != nil {
		return err
	}

	pl.Room = dest

	if err := sendRoom(cmd, fmt.Sprintf("%s arrives.", pl.Name), pl.Name); err != nil {
		return err
	}

	view, err := s.renderRoom(cmd)
	if err != nil {
		return err
	}
	return send(cmd, view)
}
