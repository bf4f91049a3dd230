package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-mudcore/internal/persist"
)

type PersistenceConfig struct {
	BatchSize     int    `json:"batch_size,omitempty"`
	MaxDrain      int    `json:"max_drain,omitempty"`
	FlushInterval string `json:"flush_interval,omitempty"`
	Capacity      int    `json:"capacity,omitempty"`
}

func (c *PersistenceConfig) Validate() error {
	el := errors.NewErrorList()

	if c.BatchSize < 0 {
		el.Add(fmt.Errorf("batch_size must not be negative"))
	}
	if c.MaxDrain < 0 {
		el.Add(fmt.Errorf("max_drain must not be negative"))
	}
	if c.Capacity < 0 {
		el.Add(fmt.Errorf("capacity must not be negative"))
	}
	if c.FlushInterval != "" {
		_, err := time.ParseDuration(c.FlushInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing flush_interval: %w", err))
		}
	}

	return el.Err()
}

func (c *PersistenceConfig) buildQueue(store persist.Store) (*persist.Queue, error) {
	var opts []persist.QueueOpt
	if c.BatchSize > 0 {
		opts = append(opts, persist.WithBatchSize(c.BatchSize))
	}
	if c.MaxDrain > 0 {
		opts = append(opts, persist.WithMaxDrain(c.MaxDrain))
	}
	if c.Capacity > 0 {
		opts = append(opts, persist.WithCapacity(c.Capacity))
	}
	if c.FlushInterval != "" {
		d, err := time.ParseDuration(c.FlushInterval)
		if err != nil {
			return nil, fmt.Errorf("parsing flush_interval: %w", err)
		}
		opts = append(opts, persist.WithFlushInterval(d))
	}

	return persist.NewQueue(store, opts...), nil
}
