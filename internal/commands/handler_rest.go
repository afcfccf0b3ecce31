package commands

import (
	"context"
	"fmt"

	"github.com/thornvale/mud/internal/dispatch"
	"github.com/thornvale/mud/internal/session"
)

// Sleep puts the player to sleep to recover stamina. Sleeping sessions
// ignore everything except a wake command.
func (s *Set) Sleep(ctx context.Context, cmd *dispatch.Context) error {
	if cmd.Player.InCombat {
		return dispatch.NewUserError("Sleep? In the middle of a fight?")
	}
	if cmd.Player.Stamina >= cmd.Player.MaxStamina {
		return dispatch.NewUserError("You are too alert to sleep.")
	}

	cmd.Session.Mode = session.ModeSleeping
	cmd.Session.SleepTicks = 0

	if err := sendRoom(cmd, fmt.Sprintf("%s lies down and falls asleep.", cmd.Player.Name), cmd.Player.Name); err != nil {
		return err
	}
	return send(cmd, "You lie down and drift off to sleep...")
}

// Wake in normal mode is a no-op; the sleeping interception handles the
// real wake-up.
func (s *Set) Wake(ctx context.Context, cmd *dispatch.Context) error {
	return send(cmd, "You are already awake.")
}
