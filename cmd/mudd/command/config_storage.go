package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-mudcore/internal/commands"
	"github.com/pixil98/go-mudcore/internal/game"
	"github.com/pixil98/go-mudcore/internal/storage"
	"github.com/pixil98/go-mudcore/internal/world"
)

type StorageConfig struct {
	/* Template assets */
	Rooms    AssetConfig[*game.RoomTemplate] `json:"rooms"`
	Zones    AssetConfig[*game.ZoneTemplate] `json:"zones"`
	Mobs     AssetConfig[*game.MobTemplate]  `json:"mobs"`
	Items    AssetConfig[*game.ItemTemplate] `json:"items"`
	Commands AssetConfig[*commands.Command]  `json:"commands"`

	// DataPath is the bolt database holding accounts and the write-behind
	// character and room snapshots.
	DataPath string `json:"data_path"`
}

func (c *StorageConfig) Validate() error {
	el := errors.NewErrorList()
	el.Add(c.Rooms.Validate("rooms"))
	el.Add(c.Zones.Validate("zones"))
	el.Add(c.Mobs.Validate("mobs"))
	el.Add(c.Items.Validate("items"))
	el.Add(c.Commands.Validate("commands"))

	if c.DataPath == "" {
		el.Add(fmt.Errorf("data_path is required"))
	}

	return el.Err()
}

func (c *StorageConfig) BuildWorldStores() (world.Stores, error) {
	rooms, err := c.Rooms.BuildFileStore()
	if err != nil {
		return world.Stores{}, fmt.Errorf("creating room store: %w", err)
	}
	zones, err := c.Zones.BuildFileStore()
	if err != nil {
		return world.Stores{}, fmt.Errorf("creating zone store: %w", err)
	}
	mobs, err := c.Mobs.BuildFileStore()
	if err != nil {
		return world.Stores{}, fmt.Errorf("creating mob store: %w", err)
	}
	items, err := c.Items.BuildFileStore()
	if err != nil {
		return world.Stores{}, fmt.Errorf("creating item store: %w", err)
	}

	return world.Stores{
		Rooms: rooms,
		Zones: zones,
		Mobs:  mobs,
		Items: items,
	}, nil
}

// BuildCommandStore loads the command vocabulary, seeding the builtin set
// when the asset directory is empty so a fresh install boots usable.
func (c *StorageConfig) BuildCommandStore() (storage.Storer[*commands.Command], error) {
	store, err := c.Commands.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating command store: %w", err)
	}

	if len(store.GetAll()) == 0 {
		for id, cmd := range commands.DefaultCommandSet() {
			if err := store.Save(id, cmd); err != nil {
				return nil, fmt.Errorf("seeding command %q: %w", id, err)
			}
		}
	}

	return store, nil
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
