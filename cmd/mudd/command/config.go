package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	TickInterval string            `json:"tick_interval"`
	Listeners    []ListenerConfig  `json:"listeners"`
	Storage      StorageConfig     `json:"storage"`
	Nats         NatsConfig        `json:"nats"`
	World        WorldConfig       `json:"world"`
	Session      SessionConfig     `json:"session"`
	Persistence  PersistenceConfig `json:"persistence"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		el.Add(fmt.Errorf("parsing tick_interval: %w", err))
	} else if d < time.Second {
		el.Add(fmt.Errorf("tick_interval must be at least 1 second"))
	}

	for i, l := range c.Listeners {
		err := l.Validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.Storage.Validate())
	el.Add(c.Nats.Validate())
	el.Add(c.World.Validate())
	el.Add(c.Session.Validate())
	el.Add(c.Persistence.Validate())

	return el.Err()
}

type WorldConfig struct {
	StartRoom string `json:"start_room"`
}

func (c *WorldConfig) Validate() error {
	el := errors.NewErrorList()

	if c.StartRoom == "" {
		el.Add(fmt.Errorf("start_room is required"))
	}

	return el.Err()
}

type SessionConfig struct {
	LinkDeadGrace string `json:"link_dead_grace,omitempty"`
}

func (c *SessionConfig) Validate() error {
	el := errors.NewErrorList()

	if c.LinkDeadGrace != "" {
		_, err := time.ParseDuration(c.LinkDeadGrace)
		if err != nil {
			el.Add(fmt.Errorf("parsing link_dead_grace: %w", err))
		}
	}

	return el.Err()
}
