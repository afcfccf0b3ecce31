package commands

import (
	"context"
	"errors"

	"github.com/thornvale/mud/internal/combat"
	"github.com/thornvale/mud/internal/dispatch"
)

// Flee abandons the player's encounter, dropping everything carried.
// Unlike round resolution it is not gated on the combat interval. An
// optional direction argument picks the escape route.
func (s *Set) Flee(ctx context.Context, cmd *dispatch.Context) error {
	direction := ""
	if len(cmd.Cmd.Args) > 0 {
		direction = cmd.Cmd.Args[0]
	}

	err := s.engine.Flee(combat.PlayerID(cmd.Player.Name), direction)
	if errors.Is(err, combat.ErrNotEngaged) {
		return dispatch.NewUserError("You are not fighting anyone.")
	}
	return err
}
