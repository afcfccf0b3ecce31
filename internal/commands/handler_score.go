package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/thornvale/mud/internal/dispatch"
	"github.com/thornvale/mud/internal/game"
)

// Score shows the player's points, rank, and vitals.
func (s *Set) Score(ctx context.Context, cmd *dispatch.Context) error {
	pl := cmd.Player

	var b strings.Builder
	fmt.Fprintf(&b, "%s the %s (level %d)\n", pl.Name, pl.Rank(), pl.Level())
	fmt.Fprintf(&b, "Points:  %d", pl.Points)
	if next := game.NextRankAt(pl.Points); next >= 0 {
		fmt.Fprintf(&b, " (%d to next rank)", next-pl.Points)
	}
	fmt.Fprintf(&b, "\nHealth:  %d/%d", pl.Health, pl.MaxHealth)
	fmt.Fprintf(&b, "\nStamina: %d/%d", pl.Stamina, pl.MaxStamina)
	fmt.Fprintf(&b, "\nWeapon power %d, armor %d.", pl.WeaponPower, pl.Armor)

	return send(cmd, b.String())
}
