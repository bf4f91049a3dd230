package room

import (
	"time"

	"github.com/pixil98/go-mudcore/internal/game"
	"github.com/pixil98/go-mudcore/internal/living"
)

// Message is the closed set of operations a room accepts.
type Message interface {
	roomMessage()
}

// EnterMsg adds an occupant. Direction is where the entity came from, used
// for the arrival broadcast. Reply acks so movers know the handoff landed.
type EnterMsg struct {
	Entity    *living.Entity
	Direction string
	Reply     chan error
}

// LeaveMsg removes an occupant. Direction is where the entity is headed.
type LeaveMsg struct {
	Entity    *living.Entity
	Direction string
}

// SayMsg is in-room speech from one occupant.
type SayMsg struct {
	SpeakerID   string
	SpeakerName string
	Text        string
}

// BroadcastMsg fans text out to present players, optionally excluding one.
type BroadcastMsg struct {
	Text      string
	ExcludeID string
}

// TryPickMsg atomically claims at most one ground item matching the query.
// A miss resolves nil, it is not an error.
type TryPickMsg struct {
	Query string
	Reply chan *game.Item
}

// DropItemMsg puts an item on the ground.
type DropItemMsg struct {
	Item *game.Item
}

// FindActorMsg resolves an occupant by actor id.
type FindActorMsg struct {
	ID    string
	Reply chan *living.Entity
}

// FindTargetMsg resolves an occupant mob by target query ("goblin 2").
type FindTargetMsg struct {
	Query string
	Reply chan *living.Entity
}

// RemoveDeadMsg drops a dead entity from the occupancy lists without the
// usual departure broadcast.
type RemoveDeadMsg struct {
	Entity *living.Entity
}

// TickMsg is the world heartbeat.
type TickMsg struct {
	Count uint64
	Now   time.Time
}

// LookMsg renders the room from one occupant's point of view.
type LookMsg struct {
	Viewer *living.Entity
	Reply  chan string
}

// SnapshotMsg returns sorted point-in-time copies of the occupancy lists.
type SnapshotMsg struct {
	Reply chan Snapshot
}

// Snapshot is an immutable copy of the room's occupancy at one instant.
type Snapshot struct {
	Players []*living.Entity
	Mobs    []*living.Entity
	Items   []*game.Item
}

func (EnterMsg) roomMessage()      {}
func (LeaveMsg) roomMessage()      {}
func (SayMsg) roomMessage()        {}
func (BroadcastMsg) roomMessage()  {}
func (TryPickMsg) roomMessage()    {}
func (DropItemMsg) roomMessage()   {}
func (FindActorMsg) roomMessage()  {}
func (FindTargetMsg) roomMessage() {}
func (RemoveDeadMsg) roomMessage() {}
func (TickMsg) roomMessage()       {}
func (LookMsg) roomMessage()       {}
func (SnapshotMsg) roomMessage()   {}
