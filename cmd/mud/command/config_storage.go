package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"

	"github.com/thornvale/mud/internal/game"
	"github.com/thornvale/mud/internal/mobs"
	"github.com/thornvale/mud/internal/storage"
)

type StorageConfig struct {
	Characters AssetConfig[*game.Character] `json:"characters"`
	Rooms      AssetConfig[*game.Room]      `json:"rooms"`
	Mobs       AssetConfig[*mobs.Spec]      `json:"mobs"`
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Characters.Validate("characters"))
	el.Add(c.Rooms.Validate("rooms"))
	el.Add(c.Mobs.Validate("mobs"))
	return el.Err()
}

// BuildWorld loads the room assets into a fresh world rooted at the
// spawn room and populates it with mobs from their specs.
func (c *StorageConfig) BuildWorld(spawnRoom string) (*game.World, error) {
	roomStore, err := c.Rooms.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}

	world := game.NewWorld(spawnRoom)
	for id, room := range roomStore.GetAll() {
		world.AddRoom(id, room)
	}
	if world.Room(spawnRoom) == nil {
		return nil, fmt.Errorf("spawn room %q not found in room assets", spawnRoom)
	}

	mobStore, err := c.Mobs.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating mob store: %w", err)
	}
	for id, spec := range mobStore.GetAll() {
		if _, err := mobs.Spawn(world, spec); err != nil {
			return nil, fmt.Errorf("spawning mob %q: %w", id, err)
		}
	}

	return world, nil
}

// BuildCharacterStore opens the persisted character records.
func (c *StorageConfig) BuildCharacterStore() (storage.Storer[*game.Character], error) {
	return c.Characters.BuildFileStore()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	if _, err := os.Stat(c.Path); err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
