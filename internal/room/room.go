package room

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/pixil98/go-mudcore/internal/actor"
	"github.com/pixil98/go-mudcore/internal/game"
	"github.com/pixil98/go-mudcore/internal/living"
)

// Room is the actor owning the authoritative occupancy of one location.
// Every cross-entity interaction inside the location is serialized through
// its mailbox; no other goroutine touches the occupant or item lists.
type Room struct {
	id   string
	tpl  *game.RoomTemplate
	zone *game.ZoneTemplate

	mb *actor.Mailbox[Message]

	players map[string]*living.Entity
	mobs    map[string]*living.Entity
	items   []*game.Item

	// onRespawn hands spawn deficits back to the world layer. Runs on the
	// room goroutine and must not ask this room anything.
	onRespawn func(r *Room, deficits []game.SpawnRule)
}

type Opt func(*Room)

// WithRespawn installs the respawn callback.
func WithRespawn(fn func(r *Room, deficits []game.SpawnRule)) Opt {
	return func(r *Room) {
		r.onRespawn = fn
	}
}

func New(id string, tpl *game.RoomTemplate, zone *game.ZoneTemplate, opts ...Opt) *Room {
	r := &Room{
		id:      id,
		tpl:     tpl,
		zone:    zone,
		players: make(map[string]*living.Entity),
		mobs:    make(map[string]*living.Entity),
	}
	r.mb = actor.NewMailbox("room-"+id, r.handle)

	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *Room) Start() { r.mb.Start() }
func (r *Room) Stop()  { r.mb.Stop() }

func (r *Room) ID() string   { return r.id }
func (r *Room) Name() string { return r.tpl.Name }

// Exits exposes the template's direction map. Template data is immutable, so
// this is safe from any goroutine.
func (r *Room) Exits() map[string]string { return r.tpl.Exits }

// Send enqueues a raw message. The typed wrappers below are the normal API.
func (r *Room) Send(msg Message) { r.mb.Send(msg) }

// Enter hands an entity to the room and waits for the ack.
func (r *Room) Enter(e *living.Entity, direction string) error {
	reply := actor.NewReply[error]()
	r.mb.Send(EnterMsg{Entity: e, Direction: direction, Reply: reply})
	res, err := actor.Await(reply, 0)
	if err != nil {
		return err
	}
	return res
}

func (r *Room) Leave(e *living.Entity, direction string) {
	r.mb.Send(LeaveMsg{Entity: e, Direction: direction})
}

func (r *Room) Say(speaker *living.Entity, text string) {
	r.mb.Send(SayMsg{SpeakerID: speaker.ID(), SpeakerName: speaker.Name(), Text: text})
}

func (r *Room) Broadcast(text string) {
	r.mb.Send(BroadcastMsg{Text: text})
}

func (r *Room) BroadcastToOthers(excludeID, text string) {
	r.mb.Send(BroadcastMsg{Text: text, ExcludeID: excludeID})
}

// TryPickItem claims at most one matching ground item. nil means nothing
// matched; an error means the room never answered.
func (r *Room) TryPickItem(query string) (*game.Item, error) {
	reply := actor.NewReply[*game.Item]()
	r.mb.Send(TryPickMsg{Query: query, Reply: reply})
	return actor.Await(reply, 0)
}

func (r *Room) DropItem(item *game.Item) {
	r.mb.Send(DropItemMsg{Item: item})
}

func (r *Room) FindActor(id string) (*living.Entity, error) {
	reply := actor.NewReply[*living.Entity]()
	r.mb.Send(FindActorMsg{ID: id, Reply: reply})
	return actor.Await(reply, 0)
}

// FindTarget resolves "goblin 2"-style queries against present mobs.
func (r *Room) FindTarget(query string) (*living.Entity, error) {
	reply := actor.NewReply[*living.Entity]()
	r.mb.Send(FindTargetMsg{Query: query, Reply: reply})
	return actor.Await(reply, 0)
}

func (r *Room) RemoveDead(e *living.Entity) {
	r.mb.Send(RemoveDeadMsg{Entity: e})
}

func (r *Room) Look(viewer *living.Entity) (string, error) {
	reply := actor.NewReply[string]()
	r.mb.Send(LookMsg{Viewer: viewer, Reply: reply})
	return actor.Await(reply, 0)
}

// Snapshot returns sorted immutable copies of the occupancy lists.
func (r *Room) Snapshot() (Snapshot, error) {
	reply := actor.NewReply[Snapshot]()
	r.mb.Send(SnapshotMsg{Reply: reply})
	return actor.Await(reply, 0)
}

func (r *Room) Tick(count uint64, now time.Time) {
	r.mb.Send(TickMsg{Count: count, Now: now})
}

func (r *Room) handle(msg Message) {
	switch m := msg.(type) {
	case EnterMsg:
		m.Reply <- r.enter(m)
	case LeaveMsg:
		r.leave(m)
	case SayMsg:
		r.say(m)
	case BroadcastMsg:
		r.broadcast(m.Text, m.ExcludeID)
	case TryPickMsg:
		m.Reply <- r.tryPick(m.Query)
	case DropItemMsg:
		r.items = append(r.items, m.Item)
	case FindActorMsg:
		m.Reply <- r.findActor(m.ID)
	case FindTargetMsg:
		m.Reply <- r.findTarget(m.Query)
	case RemoveDeadMsg:
		r.removeDead(m.Entity)
	case TickMsg:
		r.tick(m)
	case LookMsg:
		m.Reply <- r.render(m.Viewer)
	case SnapshotMsg:
		m.Reply <- r.snapshot()
	default:
		slog.Warn("unhandled room message", "room", r.id, "type", msg)
	}
}

func (r *Room) enter(m EnterMsg) error {
	e := m.Entity
	if e == nil {
		return fmt.Errorf("nil entity")
	}

	switch e.Kind() {
	case living.KindPlayer:
		r.players[e.ID()] = e
	case living.KindMob:
		r.mobs[e.ID()] = e
	}
	e.SetRoom(r)

	if m.Direction != "" {
		r.broadcast(fmt.Sprintf("%s arrives from the %s.", e.Name(), m.Direction), e.ID())
	} else if e.Kind() == living.KindPlayer {
		r.broadcast(fmt.Sprintf("%s appears.", e.Name()), e.ID())
	}

	// Present mobs get a chance to react to a new player.
	if e.Kind() == living.KindPlayer {
		for _, mob := range r.mobs {
			mob.Send(living.PlayerEnteredMsg{PlayerID: e.ID(), PlayerName: e.Name()})
		}
	}

	return nil
}

func (r *Room) leave(m LeaveMsg) {
	e := m.Entity
	delete(r.players, e.ID())
	delete(r.mobs, e.ID())
	e.SetRoom(nil)

	if m.Direction != "" {
		r.broadcast(fmt.Sprintf("%s leaves %s.", e.Name(), m.Direction), e.ID())
	} else {
		r.broadcast(fmt.Sprintf("%s vanishes.", e.Name()), e.ID())
	}
}

func (r *Room) removeDead(e *living.Entity) {
	delete(r.players, e.ID())
	delete(r.mobs, e.ID())
	e.SetRoom(nil)
}

// say delivers speech: the speaker hears themselves in second person, every
// other player hears "Name: text".
func (r *Room) say(m SayMsg) {
	for id, p := range r.players {
		if id == m.SpeakerID {
			p.Send(living.SendTextMsg{Text: fmt.Sprintf("You say: %s", m.Text)})
			continue
		}
		p.Send(living.SendTextMsg{Text: fmt.Sprintf("%s: %s", m.SpeakerName, m.Text)})
	}
}

func (r *Room) broadcast(text, excludeID string) {
	for id, p := range r.players {
		if id == excludeID {
			continue
		}
		p.Send(living.SendTextMsg{Text: text})
	}
}

func (r *Room) tryPick(query string) *game.Item {
	keyword, n := game.ParseQuery(query)
	matches := 0
	for i, item := range r.items {
		if !item.Match(keyword) {
			continue
		}
		matches++
		if matches == n {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return item
		}
	}
	return nil
}

func (r *Room) findActor(id string) *living.Entity {
	if e, ok := r.players[id]; ok {
		return e
	}
	if e, ok := r.mobs[id]; ok {
		return e
	}
	return nil
}

func (r *Room) findTarget(query string) *living.Entity {
	keyword, n := game.ParseQuery(query)
	matches := 0
	for _, mob := range r.sortedMobs() {
		tpl := mob.MobTemplate()
		if tpl == nil || !matchesTemplate(tpl.Name, tpl.Aliases, keyword) {
			continue
		}
		matches++
		if matches == n {
			return mob
		}
	}
	return nil
}

// tick forwards the heartbeat to occupants when the room is active: at least
// one player present, or a mob mid-fight. Idle empty rooms only run their
// respawn check so they cost nothing.
func (r *Room) tick(m TickMsg) {
	if r.zone != nil && r.zone.RespawnTicks > 0 && m.Count%r.zone.RespawnTicks == 0 {
		r.respawnCheck()
	}

	if !r.active() {
		return
	}

	fwd := living.TickMsg{Count: m.Count, Now: m.Now}
	for _, p := range r.players {
		p.Send(fwd)
	}
	for _, mob := range r.mobs {
		mob.Send(fwd)
	}
}

func (r *Room) active() bool {
	if len(r.players) > 0 {
		return true
	}
	for _, mob := range r.mobs {
		if mob.InCombat() {
			return true
		}
	}
	return false
}

// respawnCheck reports how far below the configured population each mob
// spawn rule is. The world layer rolls the chances and spawns.
func (r *Room) respawnCheck() {
	if r.onRespawn == nil || len(r.tpl.MobSpawns) == 0 {
		return
	}

	byTemplate := make(map[string]int)
	for _, mob := range r.mobs {
		byTemplate[mob.TemplateID()]++
	}

	var deficits []game.SpawnRule
	for _, rule := range r.tpl.MobSpawns {
		if missing := rule.Count - byTemplate[rule.ID]; missing > 0 {
			deficits = append(deficits, game.SpawnRule{
				ID:     rule.ID,
				Count:  missing,
				Chance: rule.Chance,
			})
		}
	}
	if len(deficits) > 0 {
		r.onRespawn(r, deficits)
	}
}

func (r *Room) snapshot() Snapshot {
	items := make([]*game.Item, len(r.items))
	copy(items, r.items)
	return Snapshot{
		Players: r.sortedPlayers(),
		Mobs:    r.sortedMobs(),
		Items:   items,
	}
}

func (r *Room) sortedPlayers() []*living.Entity {
	out := make([]*living.Entity, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func (r *Room) sortedMobs() []*living.Entity {
	out := make([]*living.Entity, 0, len(r.mobs))
	for _, mob := range r.mobs {
		out = append(out, mob)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}
