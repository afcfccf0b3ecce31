package game

import (
	"sort"
	"strings"
)

// World holds the shared room topology and the registries of players and
// mobs occupying it. It is an explicitly owned collection injected into
// each component; all mutation happens inside the single tick context,
// so no locking is required.
type World struct {
	rooms     map[string]*Room
	players   map[string]*Player
	mobs      map[string]*Mob
	spawnRoom string
}

// NewWorld creates an empty world whose players respawn at spawnRoom.
func NewWorld(spawnRoom string) *World {
	return &World{
		rooms:     make(map[string]*Room),
		players:   make(map[string]*Player),
		mobs:      make(map[string]*Mob),
		spawnRoom: spawnRoom,
	}
}

// SpawnRoom returns the id of the respawn room.
func (w *World) SpawnRoom() string {
	return w.spawnRoom
}

// AddRoom registers a room under the given id.
func (w *World) AddRoom(id string, r *Room) {
	w.rooms[id] = r
}

// Room returns the room with the given id, or nil.
func (w *World) Room(id string) *Room {
	return w.rooms[id]
}

// AddPlayer registers a player. Names are unique.
func (w *World) AddPlayer(p *Player) error {
	if _, exists := w.players[p.Name]; exists {
		return ErrPlayerExists
	}
	w.players[p.Name] = p
	return nil
}

// RemovePlayer removes a player by name.
func (w *World) RemovePlayer(name string) error {
	if _, exists := w.players[name]; !exists {
		return ErrPlayerNotFound
	}
	delete(w.players, name)
	return nil
}

// Player returns the player with the given name, or nil.
func (w *World) Player(name string) *Player {
	return w.players[name]
}

// PlayersInRoom returns the players in a room, sorted by name for
// deterministic iteration.
func (w *World) PlayersInRoom(roomID string) []*Player {
	var out []*Player
	for _, p := range w.players {
		if p.Room == roomID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AddMob registers a mob instance.
func (w *World) AddMob(m *Mob) {
	w.mobs[m.ID] = m
}

// RemoveMob removes a mob by instance id.
func (w *World) RemoveMob(id string) {
	delete(w.mobs, id)
}

// Mob returns the mob with the given instance id, or nil.
func (w *World) Mob(id string) *Mob {
	return w.mobs[id]
}

// Mobs returns all mobs sorted by instance id for deterministic iteration.
func (w *World) Mobs() []*Mob {
	out := make([]*Mob, 0, len(w.mobs))
	for _, m := range w.mobs {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// MobsInRoom returns the living mobs in a room, sorted by instance id.
func (w *World) MobsInRoom(roomID string) []*Mob {
	var out []*Mob
	for _, m := range w.mobs {
		if m.Room == roomID && m.Alive() {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FindMobInRoom returns the first living mob in the room whose name
// contains the query, case-insensitively. Partial names match so
// players can type "goblin" for "Cave Goblin".
func (w *World) FindMobInRoom(roomID, name string) *Mob {
	query := strings.ToLower(name)
	for _, m := range w.MobsInRoom(roomID) {
		if strings.Contains(strings.ToLower(m.Name), query) {
			return m
		}
	}
	return nil
}
