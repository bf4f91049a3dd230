package commands

import (
	"fmt"
	"sort"
	"strings"
)

// HelpHandlerFactory lists known commands, or shows one command's help text.
type HelpHandlerFactory struct {
	dispatcher *Dispatcher
}

func NewHelpHandlerFactory(dispatcher *Dispatcher) *HelpHandlerFactory {
	return &HelpHandlerFactory{dispatcher: dispatcher}
}

func (f *HelpHandlerFactory) ValidateConfig(config map[string]string) error { return nil }

func (f *HelpHandlerFactory) Create(config map[string]string) (CommandFunc, error) {
	return func(ctx *CommandContext) error {
		cmds := f.dispatcher.Commands()

		if ctx.Args != "" {
			name := strings.ToLower(ctx.Args)
			for primary, cmd := range cmds {
				for _, alias := range cmd.Aliases {
					if strings.ToLower(alias) == name {
						help := cmd.Help
						if help == "" {
							help = "No help written for this command."
						}
						ctx.Actor.Reply(fmt.Sprintf("%s: %s", primary, help))
						return nil
					}
				}
			}
			ctx.Actor.Reply(fmt.Sprintf("No such command: %s", ctx.Args))
			return nil
		}

		names := make([]string, 0, len(cmds))
		for name := range cmds {
			names = append(names, name)
		}
		sort.Strings(names)

		var b strings.Builder
		b.WriteString("Available commands:")
		for _, name := range names {
			b.WriteString("\r\n  " + name)
		}
		ctx.Actor.Reply(b.String())
		return nil
	}, nil
}
