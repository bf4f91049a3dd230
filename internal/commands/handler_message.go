package commands

import (
	"fmt"
)

// MessageHandlerFactory replies with a canned, templated line. Flavor
// commands in the asset files use this without any code changes.
// Config:
//   - template (required): the line to render; sees .Name and .Args
type MessageHandlerFactory struct{}

type messageData struct {
	Name string
	Args string
}

func (f *MessageHandlerFactory) ValidateConfig(config map[string]string) error {
	tmpl := config["template"]
	if tmpl == "" {
		return fmt.Errorf("template is required")
	}
	if _, err := ExpandTemplate(tmpl, messageData{}); err != nil {
		return fmt.Errorf("message template: %w", err)
	}
	return nil
}

func (f *MessageHandlerFactory) Create(config map[string]string) (CommandFunc, error) {
	tmpl := config["template"]

	return func(ctx *CommandContext) error {
		text, err := ExpandTemplate(tmpl, messageData{
			Name: ctx.Actor.Name(),
			Args: ctx.Args,
		})
		if err != nil {
			return fmt.Errorf("rendering message: %w", err)
		}
		ctx.Actor.Reply(text)
		return nil
	}, nil
}
