package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-mudcore/internal/commands"
	"github.com/pixil98/go-mudcore/internal/listener"
	"github.com/pixil98/go-mudcore/internal/messaging"
	"github.com/pixil98/go-mudcore/internal/persist"
	"github.com/pixil98/go-mudcore/internal/session"
	"github.com/pixil98/go-mudcore/internal/world"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	tick, err := time.ParseDuration(cfg.TickInterval)
	if err != nil {
		return nil, fmt.Errorf("parsing tick_interval: %w", err)
	}

	// Template assets
	stores, err := cfg.Storage.BuildWorldStores()
	if err != nil {
		return nil, err
	}
	commandStore, err := cfg.Storage.BuildCommandStore()
	if err != nil {
		return nil, err
	}

	// Durable state: accounts plus write-behind snapshots
	bolt, err := persist.OpenBolt(cfg.Storage.DataPath)
	if err != nil {
		return nil, fmt.Errorf("opening data store: %w", err)
	}
	queue, err := cfg.Persistence.buildQueue(bolt)
	if err != nil {
		return nil, err
	}

	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	worldManager := world.NewManager(stores, bolt, queue, cfg.World.StartRoom)

	// The dispatcher and session manager reference each other: sessions
	// dispatch player input, and the quit command retires a session. Build
	// the dispatcher first, then register handlers once both exist.
	dispatcher := commands.NewDispatcher(commandStore)

	var sessionOpts []session.Opt
	if cfg.Session.LinkDeadGrace != "" {
		grace, err := time.ParseDuration(cfg.Session.LinkDeadGrace)
		if err != nil {
			return nil, fmt.Errorf("parsing link_dead_grace: %w", err)
		}
		sessionOpts = append(sessionOpts, session.WithGrace(grace))
	}
	sessions := session.NewManager(worldManager, bolt, dispatcher, sessionOpts...)

	err = commands.RegisterBuiltins(dispatcher, worldManager, sessions, natsServer)
	if err != nil {
		return nil, fmt.Errorf("registering command handlers: %w", err)
	}
	err = dispatcher.CompileAll()
	if err != nil {
		return nil, fmt.Errorf("compiling commands: %w", err)
	}

	router := messaging.NewRouter(natsServer, worldManager, natsServer.Ready())

	// The pulse owns the shutdown order: save sweep first, then the final
	// queue drain. Leaving the drain to the queue worker alone would race
	// the sweep, since every worker stops on the same context.
	pulse := world.NewPulse(worldManager, world.WithTickLength(tick), world.WithFlusher(queue))

	// Create Listeners
	cm := listener.NewConnectionManager(sessions)
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		w, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = w
	}

	// Create a worker list
	return service.WorkerList{
		"nats":      natsServer,
		"router":    router,
		"persist":   queue,
		"pulse":     pulse,
		"listeners": &listeners,
	}, nil
}
