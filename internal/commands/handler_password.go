package commands

import (
	"context"

	"github.com/thornvale/mud/internal/dispatch"
	"github.com/thornvale/mud/internal/session"
)

// Password starts the staged password-change flow; the processor
// intercepts the following queue entries as its stages.
func (s *Set) Password(ctx context.Context, cmd *dispatch.Context) error {
	cmd.Session.Mode = session.ModePasswordChange
	cmd.Session.PasswordStage = session.StageCurrent
	return send(cmd, "Enter your current password:")
}
