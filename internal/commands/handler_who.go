package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/thornvale/mud/internal/dispatch"
	"github.com/thornvale/mud/internal/session"
)

// Who lists every connected player in connect order.
func (s *Set) Who(ctx context.Context, cmd *dispatch.Context) error {
	var b strings.Builder
	b.WriteString("Adventurers abroad in the world:")

	cmd.Sessions.ForEach(func(other *session.Session) {
		if other.Player == nil {
			return
		}
		fmt.Fprintf(&b, "\n  %s the %s", other.Player.Name, other.Player.Rank())
	})

	return send(cmd, b.String())
}
