package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// ZoneTemplate groups rooms that share a respawn cadence.
type ZoneTemplate struct {
	Name string `json:"name"`

	// RespawnTicks is how many world ticks pass between respawn sweeps
	// for rooms in this zone. Zero disables respawning.
	RespawnTicks uint64 `json:"respawn_ticks"`
}

// Validate satisfies storage.ValidatingSpec.
func (t *ZoneTemplate) Validate() error {
	el := errors.NewErrorList()

	if t.Name == "" {
		el.Add(fmt.Errorf("zone name is required"))
	}

	return el.Err()
}
