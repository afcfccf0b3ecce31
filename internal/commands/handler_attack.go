package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thornvale/mud/internal/combat"
	"github.com/thornvale/mud/internal/dispatch"
	"github.com/thornvale/mud/internal/display"
)

// Attack engages the named target in the player's room. The encounter's
// first round resolves on the combat interval; only the acknowledgement
// is immediate.
func (s *Set) Attack(ctx context.Context, cmd *dispatch.Context) error {
	if len(cmd.Cmd.Args) == 0 {
		return dispatch.NewUserError("Attack what?")
	}
	targetName := strings.ToLower(strings.Join(cmd.Cmd.Args, " "))
	pl := cmd.Player

	attacker := &combat.PlayerCombatant{Player: pl}

	if mob := cmd.World.FindMobInRoom(pl.Room, targetName); mob != nil {
		defender := &combat.MobCombatant{Mob: mob}
		if _, err := s.engine.Engage(attacker, defender); err != nil {
			return engageError(err, mob.Name)
		}

		if err := send(cmd, expand(`You attack {{ .Target }}!`, struct{ Target string }{"the " + mob.Name})); err != nil {
			return err
		}
		return sendRoom(cmd, fmt.Sprintf("%s attacks the %s!", pl.Name, mob.Name), pl.Name)
	}

	for _, other := range cmd.World.PlayersInRoom(pl.Room) {
		if strings.ToLower(other.Name) != targetName {
			continue
		}
		defender := &combat.PlayerCombatant{Player: other}
		if _, err := s.engine.Engage(attacker, defender); err != nil {
			return engageError(err, other.Name)
		}

		if err := send(cmd, fmt.Sprintf("You attack %s!", other.Name)); err != nil {
			return err
		}
		if err := cmd.Pub.PublishToPlayer(other.Name, []byte(fmt.Sprintf("%s attacks you!", pl.Name))); err != nil {
			return err
		}
		return sendRoom(cmd, fmt.Sprintf("%s attacks %s!", pl.Name, other.Name), pl.Name, other.Name)
	}

	return dispatch.NewUserError(fmt.Sprintf("There is no '%s' here to attack.", targetName))
}

// engageError maps engine rejections to player-facing messages.
func engageError(err error, targetName string) error {
	switch {
	case errors.Is(err, combat.ErrSelfAttack):
		return dispatch.NewUserError("Attacking yourself will not get you anywhere.")
	case errors.Is(err, combat.ErrAlreadyEngaged):
		if strings.HasPrefix(strings.ToLower(err.Error()), strings.ToLower(targetName)+":") {
			return dispatch.NewUserError(fmt.Sprintf("%s is already fighting someone else.", display.Capitalize(targetName)))
		}
		return dispatch.NewUserError("You are already in a fight!")
	default:
		return err
	}
}
