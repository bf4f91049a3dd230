package commands

import (
	"github.com/pixil98/go-errors"
)

// RegisterBuiltins wires every built-in handler factory into the dispatcher.
func RegisterBuiltins(d *Dispatcher, world World, quitter Quitter, pub Publisher) error {
	el := errors.NewErrorList()

	el.Add(d.RegisterFactory("look", &LookHandlerFactory{}))
	el.Add(d.RegisterFactory("say", &SayHandlerFactory{}))
	el.Add(d.RegisterFactory("move", NewMoveHandlerFactory(world)))
	el.Add(d.RegisterFactory("get", &GetHandlerFactory{}))
	el.Add(d.RegisterFactory("drop", &DropHandlerFactory{}))
	el.Add(d.RegisterFactory("kill", NewKillHandlerFactory(world)))
	el.Add(d.RegisterFactory("wear", &WearHandlerFactory{}))
	el.Add(d.RegisterFactory("remove", &RemoveHandlerFactory{}))
	el.Add(d.RegisterFactory("equipment", &EquipmentHandlerFactory{}))
	el.Add(d.RegisterFactory("inventory", &InventoryHandlerFactory{}))
	el.Add(d.RegisterFactory("who", NewWhoHandlerFactory(world)))
	el.Add(d.RegisterFactory("quit", NewQuitHandlerFactory(quitter)))
	el.Add(d.RegisterFactory("score", &ScoreHandlerFactory{}))
	el.Add(d.RegisterFactory("help", NewHelpHandlerFactory(d)))
	el.Add(d.RegisterFactory("message", &MessageHandlerFactory{}))
	if pub != nil {
		el.Add(d.RegisterFactory("tell", NewTellHandlerFactory(pub)))
		el.Add(d.RegisterFactory("channel", NewChannelHandlerFactory(pub)))
	}

	return el.Err()
}

// DefaultCommandSet is the built-in verb table, used to seed an empty
// command store on first boot. Operators can edit the written asset files
// afterward.
func DefaultCommandSet() map[string]*Command {
	cmds := map[string]*Command{
		"look":      {Aliases: []string{"look", "l"}, Handler: "look", Help: "Look around the room."},
		"say":       {Aliases: []string{"say", "'"}, Handler: "say", Help: "Speak to everyone in the room."},
		"get":       {Aliases: []string{"get", "take"}, Handler: "get", Help: "Pick up an item."},
		"drop":      {Aliases: []string{"drop"}, Handler: "drop", Help: "Drop an item on the ground."},
		"kill":      {Aliases: []string{"kill", "attack", "k"}, Handler: "kill", Help: "Attack a creature."},
		"wear":      {Aliases: []string{"wear", "wield", "equip"}, Handler: "wear", Help: "Equip an item you carry."},
		"remove":    {Aliases: []string{"remove", "unequip"}, Handler: "remove", Help: "Remove an equipped item."},
		"equipment": {Aliases: []string{"equipment", "eq"}, Handler: "equipment", Help: "List what you are wearing."},
		"inventory": {Aliases: []string{"inventory", "inv", "i"}, Handler: "inventory", Help: "List what you are carrying."},
		"who":       {Aliases: []string{"who"}, Handler: "who", Help: "See who is online."},
		"quit":      {Aliases: []string{"quit", "logout"}, Handler: "quit", Help: "Leave the game."},
		"score":     {Aliases: []string{"score", "stats"}, Handler: "score", Help: "Show your stat sheet."},
		"help":      {Aliases: []string{"help", "?"}, Handler: "help", Help: "List commands, or 'help <command>'."},
		"tell":      {Aliases: []string{"tell", "whisper"}, Handler: "tell", Help: "Send a private message: tell <player> <text>."},
		"gossip":    {Aliases: []string{"gossip", "gos"}, Handler: "channel", Help: "Chat on the gossip channel.", Config: map[string]string{"channel": "gossip"}},
	}

	for _, dir := range []struct{ name, alias string }{
		{"north", "n"}, {"south", "s"}, {"east", "e"}, {"west", "w"},
		{"up", "u"}, {"down", "d"},
	} {
		cmds[dir.name] = &Command{
			Aliases: []string{dir.name, dir.alias},
			Handler: "move",
			Help:    "Travel " + dir.name + ".",
			Config:  map[string]string{"direction": dir.name},
		}
	}

	return cmds
}
