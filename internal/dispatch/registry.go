package dispatch

import (
	"context"
	"fmt"

	"github.com/thornvale/mud/internal/game"
	"github.com/thornvale/mud/internal/session"
)

// Context carries everything a handler may touch. Handlers run inside
// the tick context and may mutate shared state freely; anything that
// must wait on I/O goes through Pub, which never blocks the loop.
type Context struct {
	Session  *session.Session
	Player   *game.Player
	World    *game.World
	Sessions *session.Registry
	Pub      game.Publisher
	Cmd      *ParsedCommand
}

// HandlerFunc executes one command. A returned *UserError is shown to
// the player; any other error is a system fault.
type HandlerFunc func(ctx context.Context, cmd *Context) error

// Registry maps verbs to handler capabilities. Resolution happens once
// per dequeued command.
type Registry struct {
	handlers map[string]HandlerFunc
}

// NewHandlerRegistry creates an empty registry.
func NewHandlerRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]HandlerFunc),
	}
}

// Register binds a handler to a verb and any aliases.
func (r *Registry) Register(verb string, fn HandlerFunc, aliases ...string) error {
	for _, v := range append([]string{verb}, aliases...) {
		if v == "" {
			return fmt.Errorf("verb cannot be empty")
		}
		if _, exists := r.handlers[v]; exists {
			return fmt.Errorf("verb %q already registered", v)
		}
		r.handlers[v] = fn
	}
	return nil
}

// Resolve returns the handler for a verb.
func (r *Registry) Resolve(verb string) (HandlerFunc, bool) {
	fn, ok := r.handlers[verb]
	return fn, ok
}
