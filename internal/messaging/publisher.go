package messaging

import (
	"fmt"
	"strings"

	"github.com/thornvale/mud/internal/game"
)

// NatsPublisher delivers core output onto per-player NATS subjects.
// Room delivery fans out to the room's current occupants; there are no
// per-room subjects.
type NatsPublisher struct {
	server *NatsServer
	world  *game.World
}

// NewNatsPublisher wraps a NatsServer for message delivery.
func NewNatsPublisher(server *NatsServer, world *game.World) *NatsPublisher {
	return &NatsPublisher{server: server, world: world}
}

// PlayerSubject is the subject a player's output is published on.
func PlayerSubject(name string) string {
	return fmt.Sprintf("player-%s", strings.ToLower(name))
}

// StatsSubject is the subject a player's stat snapshots are published on.
func StatsSubject(name string) string {
	return fmt.Sprintf("stats-%s", strings.ToLower(name))
}

func (p *NatsPublisher) PublishToPlayer(name string, data []byte) error {
	return p.server.Publish(PlayerSubject(name), data)
}

func (p *NatsPublisher) PublishToRoom(roomID string, data []byte, exclude ...string) error {
	excludeSet := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excludeSet[strings.ToLower(name)] = true
	}

	var firstErr error
	for _, pl := range p.world.PlayersInRoom(roomID) {
		if excludeSet[strings.ToLower(pl.Name)] {
			continue
		}
		if err := p.server.Publish(PlayerSubject(pl.Name), data); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (p *NatsPublisher) PublishStats(name string, data []byte) error {
	return p.server.Publish(StatsSubject(name), data)
}
