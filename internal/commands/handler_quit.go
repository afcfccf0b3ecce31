package commands

import (
	"context"

	"github.com/thornvale/mud/internal/dispatch"
	"github.com/thornvale/mud/internal/session"
)

// Quit marks the session disconnecting; the processor finalizes it on
// the next tick, ahead of any queued commands.
func (s *Set) Quit(ctx context.Context, cmd *dispatch.Context) error {
	cmd.Session.Mode = session.ModeDisconnecting
	return send(cmd, "Goodbye!")
}
