package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// SpawnRule configures one template to spawn when a room is first loaded.
// Each rule rolls its chance independently, then spawns Count instances.
type SpawnRule struct {
	ID     string  `json:"id"`
	Count  int     `json:"count"`
	Chance float64 `json:"chance"` // 0..1, 0 treated as 1 (always)
}

func (r *SpawnRule) validate() error {
	el := errors.NewErrorList()

	if r.ID == "" {
		el.Add(fmt.Errorf("spawn id is required"))
	}
	if r.Count < 0 {
		el.Add(fmt.Errorf("spawn count must not be negative"))
	}
	if r.Chance < 0 || r.Chance > 1 {
		el.Add(fmt.Errorf("spawn chance must be between 0 and 1"))
	}

	return el.Err()
}

// RoomTemplate represents a location definition loaded from asset files.
type RoomTemplate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ZoneID      string `json:"zone_id"`

	// Exits maps direction -> destination room id.
	Exits map[string]string `json:"exits,omitempty"`

	MobSpawns  []SpawnRule `json:"mob_spawns,omitempty"`
	ItemSpawns []SpawnRule `json:"item_spawns,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (t *RoomTemplate) Validate() error {
	el := errors.NewErrorList()

	if t.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}
	if t.ZoneID == "" {
		el.Add(fmt.Errorf("zone_id is required"))
	}
	for dir, dest := range t.Exits {
		if dest == "" {
			el.Add(fmt.Errorf("exit %s: destination room id is required", dir))
		}
	}
	for i := range t.MobSpawns {
		if err := t.MobSpawns[i].validate(); err != nil {
			el.Add(fmt.Errorf("mob spawn %d: %w", i, err))
		}
	}
	for i := range t.ItemSpawns {
		if err := t.ItemSpawns[i].validate(); err != nil {
			el.Add(fmt.Errorf("item spawn %d: %w", i, err))
		}
	}

	return el.Err()
}
