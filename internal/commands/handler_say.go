package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/thornvale/mud/internal/dispatch"
	"github.com/thornvale/mud/internal/game"
	"github.com/thornvale/mud/internal/session"
)

type speech struct {
	Speaker string
	Text    string
}

// titledName is the speech attribution: name plus rank title, so rank
// is visible whenever a player speaks.
func titledName(p *game.Player) string {
	return fmt.Sprintf("%s the %s", p.Name, p.Rank())
}

// Say speaks to everyone in the room.
func (s *Set) Say(ctx context.Context, cmd *dispatch.Context) error {
	text := strings.TrimSpace(cmd.Cmd.Text)
	if text == "" {
		return dispatch.NewUserError("Say what?")
	}

	data := speech{Speaker: titledName(cmd.Player), Text: text}
	if err := send(cmd, expand(`You say: "{{ .Text }}"`, data)); err != nil {
		return err
	}
	return sendRoom(cmd, expand(`{{ .Speaker }} says: "{{ .Text }}"`, data), cmd.Player.Name)
}

// Shout broadcasts to every connected player. With no message it parks
// the session in pending-input mode and uses the next queue entry as
// the message body.
func (s *Set) Shout(ctx context.Context, cmd *dispatch.Context) error {
	text := strings.TrimSpace(cmd.Cmd.Text)
	if text == "" {
		cmd.Session.Mode = session.ModePendingInput
		cmd.Session.Pending = &session.PendingInput{Kind: session.PendingShout}
		return send(cmd, "Shout what?")
	}

	data := speech{Speaker: titledName(cmd.Player), Text: text}
	outbound := expand(`{{ .Speaker }} shouts: "{{ .Text }}"`, data)

	var firstErr error
	cmd.Sessions.ForEach(func(other *session.Session) {
		if other.Player == nil || other.Player.Name == cmd.Player.Name {
			return
		}
		if err := cmd.Pub.PublishToPlayer(other.Player.Name, []byte(outbound)); err != nil && firstErr == nil {
			firstErr = err
		}
	})
	if firstErr != nil {
		return firstErr
	}

	return send(cmd, expand(`You shout: "{{ .Text }}"`, data))
}

// Tell sends a private message to a named player. With a recipient but
// no message it parks the session in pending-input mode.
func (s *Set) Tell(ctx context.Context, cmd *dispatch.Context) error {
	if len(cmd.Cmd.Args) == 0 {
		return dispatch.NewUserError("Tell whom?")
	}

	name := cmd.Cmd.Args[0]
	target := cmd.Sessions.ByPlayer(name)
	if target == nil || target.Player == nil {
		return dispatch.NewUserError(fmt.Sprintf("There is no one called '%s' in the world.", name))
	}
	if target.Player.Name == cmd.Player.Name {
		return dispatch.NewUserError("Talking to yourself again?")
	}

	text := strings.TrimSpace(strings.TrimPrefix(cmd.Cmd.Text, cmd.Cmd.Args[0]))
	if text == "" {
		cmd.Session.Mode = session.ModePendingInput
		cmd.Session.Pending = &session.PendingInput{Kind: session.PendingTell, Recipient: target.Player.Name}
		return send(cmd, fmt.Sprintf("Tell %s what?", target.Player.Name))
	}

	data := speech{Speaker: titledName(cmd.Player), Text: text}
	if err := cmd.Pub.PublishToPlayer(target.Player.Name, []byte(expand(`{{ .Speaker }} tells you: "{{ .Text }}"`, data))); err != nil {
		return err
	}
	return send(cmd, expand(fmt.Sprintf(`You tell %s: "{{ .Text }}"`, target.Player.Name), data))
}

// Converse switches the session into converse mode: every queued line
// becomes a say until the player leaves with a '*' or '>' prefix.
func (s *Set) Converse(ctx context.Context, cmd *dispatch.Context) error {
	cmd.Session.Mode = session.ModeConverse
	return send(cmd, "Converse mode ON. Start a line with '*' to leave it.")
}
