// Package commands holds the built-in verb handlers. Each handler runs
// inside the tick loop via the dispatch registry; anything user-facing
// it produces goes out through the publisher.
package commands

import (
	"github.com/thornvale/mud/internal/combat"
	"github.com/thornvale/mud/internal/dispatch"
)

// Set bundles the collaborators the handlers need beyond what the
// dispatch context already carries.
type Set struct {
	engine *combat.Engine
}

// NewSet creates the built-in command set.
func NewSet(engine *combat.Engine) *Set {
	return &Set{engine: engine}
}

// RegisterAll binds every built-in verb and its aliases.
func (s *Set) RegisterAll(reg *dispatch.Registry) error {
	regs := []struct {
		verb    string
		fn      dispatch.HandlerFunc
		aliases []string
	}{
		{"look", s.Look, []string{"l"}},
		{"north", s.moveDir("north"), []string{"n"}},
		{"south", s.moveDir("south"), []string{"s"}},
		{"east", s.moveDir("east"), []string{"e"}},
		{"west", s.moveDir("west"), []string{"w"}},
		{"up", s.moveDir("up"), []string{"u"}},
		{"down", s.moveDir("down"), []string{"d"}},
		{"go", s.Go, nil},
		{"attack", s.Attack, []string{"kill", "k"}},
		{"flee", s.Flee, nil},
		{"say", s.Say, nil},
		{"shout", s.Shout, nil},
		{"tell", s.Tell, nil},
		{"converse", s.Converse, nil},
		{"sleep", s.Sleep, []string{"rest"}},
		{"wake", s.Wake, []string{"awake"}},
		{"password", s.Password, nil},
		{"score", s.Score, []string{"sc"}},
		{"inventory", s.Inventory, []string{"inv", "i"}},
		{"get", s.Get, []string{"take"}},
		{"drop", s.Drop, nil},
		{"who", s.Who, nil},
		{"help", s.Help, nil},
		{"quit", s.Quit, nil},
	}

	for _, r := range regs {
		if err := reg.Register(r.verb, r.fn, r.aliases...); err != nil {
			return err
		}
	}
	return nil
}

func send(cmd *dispatch.Context, msg string) error {
	return cmd.Pub.PublishToPlayer(cmd.Player.Name, []byte(msg))
}

func sendRoom(cmd *dispatch.Context, msg string, exclude ...string) error {
	return cmd.Pub.PublishToRoom(cmd.Player.Room, []byte(msg), exclude...)
}
