package commands

import (
	"context"

	"github.com/thornvale/mud/internal/dispatch"
)

const helpText = `Commands:
  look (l)                 describe your surroundings
  north/south/east/west/up/down, go <dir>
  attack <target> (kill)   start a fight
  flee [direction]         abandon a fight, dropping everything
  say <text>, shout, tell <player>
  converse                 chat mode; '*' on its own line to leave
  sleep (rest), wake       recover stamina
  get <item>, drop <item>, inventory (i)
  score (sc)               your points, rank and vitals
  who                      who is connected
  password                 change your password
  quit                     leave the world

Separate commands with ';' to queue several at once.`

// Help shows the command summary.
func (s *Set) Help(ctx context.Context, cmd *dispatch.Context) error {
	return send(cmd, helpText)
}
