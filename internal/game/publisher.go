package game

// Publisher delivers core output to the transport layer for display.
type Publisher interface {
	// PublishToPlayer sends data to a single player's channel.
	PublishToPlayer(name string, data []byte) error
	// PublishToRoom sends data to every player in the room except those
	// listed in exclude.
	PublishToRoom(roomID string, data []byte, exclude ...string) error
	// PublishStats sends an out-of-band state-change notification for
	// the named player (health, stamina, points).
	PublishStats(name string, data []byte) error
}
