package world

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/pixil98/go-mudcore/internal/room"
)

const (
	DefaultTickLength = time.Second

	// snapshotEvery is the tick interval between room persistence sweeps.
	snapshotEvery = 60
)

// Flusher finishes the write-behind queue once the shutdown sweep has
// handed it the final snapshots.
type Flusher interface {
	Close()
}

// Pulse drives the world heartbeat. Each period it increments the global
// tick counter and fans the tick out to every active room, one task per
// room so a busy room never delays the rest.
type Pulse struct {
	manager    *Manager
	tickLength time.Duration
	flusher    Flusher
	count      atomic.Uint64
}

type PulseOpt func(*Pulse)

func WithTickLength(d time.Duration) PulseOpt {
	return func(p *Pulse) { p.tickLength = d }
}

// WithFlusher hands the pulse the write-behind queue's shutdown handle. All
// workers stop on one shared context, so the queue's own final drain can run
// before the save sweep has enqueued anything; sequencing the flush after
// SaveAll here is what keeps the sweep's records from being lost.
func WithFlusher(f Flusher) PulseOpt {
	return func(p *Pulse) { p.flusher = f }
}

func NewPulse(manager *Manager, opts ...PulseOpt) *Pulse {
	p := &Pulse{
		manager:    manager,
		tickLength: DefaultTickLength,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Count returns the current tick number.
func (p *Pulse) Count() uint64 {
	return p.count.Load()
}

// Start runs the heartbeat until the context is canceled. Satisfies
// service.Worker.
func (p *Pulse) Start(ctx context.Context) error {
	slog.Info("world pulse started", "period", p.tickLength)
	ticker := time.NewTicker(p.tickLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.manager.SaveAll()
			if p.flusher != nil {
				p.flusher.Close()
			}
			slog.Info("world pulse stopped", "ticks", p.count.Load())
			return nil
		case now := <-ticker.C:
			p.tick(now)
		}
	}
}

func (p *Pulse) tick(now time.Time) {
	count := p.count.Add(1)

	p.manager.rooms.Range(func(_, v any) bool {
		r := v.(*room.Room)
		go r.Tick(count, now)
		return true
	})

	if count%snapshotEvery == 0 {
		p.manager.rooms.Range(func(_, v any) bool {
			go p.manager.SnapshotRoom(v.(*room.Room))
			return true
		})
	}
}
