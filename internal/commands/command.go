package commands

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Command is one player-facing verb, loaded from asset files. The handler
// field names a registered factory; config carries handler-specific settings
// such as a movement direction or a message template.
type Command struct {
	Aliases []string          `json:"aliases"`
	Help    string            `json:"help,omitempty"`
	Handler string            `json:"handler"`
	Config  map[string]string `json:"config,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (c *Command) Validate() error {
	el := errors.NewErrorList()

	if len(c.Aliases) == 0 {
		el.Add(fmt.Errorf("command requires at least one alias"))
	}
	for _, a := range c.Aliases {
		if a == "" {
			el.Add(fmt.Errorf("command alias cannot be empty"))
		}
	}
	if c.Handler == "" {
		el.Add(fmt.Errorf("command handler is required"))
	}

	return el.Err()
}
