package world

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/pixil98/go-mudcore/internal/combat"
	"github.com/pixil98/go-mudcore/internal/display"
	"github.com/pixil98/go-mudcore/internal/game"
	"github.com/pixil98/go-mudcore/internal/living"
	"github.com/pixil98/go-mudcore/internal/persist"
	"github.com/pixil98/go-mudcore/internal/room"
	"github.com/pixil98/go-mudcore/internal/storage"
)

// newCharacterAttackSpeed is the bare-handed swing interval for a fresh
// character before any weapon is equipped.
const newCharacterAttackSpeed = 3 * time.Second

// Stores bundles the read-only template repositories the world draws from.
type Stores struct {
	Rooms storage.Storer[*game.RoomTemplate]
	Zones storage.Storer[*game.ZoneTemplate]
	Mobs  storage.Storer[*game.MobTemplate]
	Items storage.Storer[*game.ItemTemplate]
}

// CharacterSource loads and saves durable character and room state.
type CharacterSource interface {
	GetCharacter(id string) (*persist.CharacterRecord, error)
	GetRoom(id string) (*persist.RoomRecord, error)
}

// Saver is the write-behind queue the world snapshots into.
type Saver interface {
	SaveAsync(rec persist.Record)
}

// Manager owns the global registries: active rooms and online players. Both
// are concurrent maps with lock-free reads; room creation is the only write
// path that needs coordination, handled by double-checked insertion.
type Manager struct {
	stores   Stores
	source   CharacterSource
	saver    Saver
	resolver *combat.Resolver

	startRoomID string

	rooms   sync.Map // room id -> *room.Room
	players sync.Map // character id -> *living.Entity

	createMu sync.Mutex

	randFn func() float64
}

type Opt func(*Manager)

// WithResolver overrides the combat resolver handed to spawned entities.
func WithResolver(r *combat.Resolver) Opt {
	return func(m *Manager) { m.resolver = r }
}

// WithRandSource pins the spawn-chance rolls, for tests.
func WithRandSource(fn func() float64) Opt {
	return func(m *Manager) { m.randFn = fn }
}

func NewManager(stores Stores, source CharacterSource, saver Saver, startRoomID string, opts ...Opt) *Manager {
	m := &Manager{
		stores:      stores,
		source:      source,
		saver:       saver,
		resolver:    combat.NewResolver(),
		startRoomID: startRoomID,
		randFn:      rand.Float64,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Room returns the live actor for a room id, creating it lazily on first
// reference. Rooms persist for the process lifetime once created.
func (m *Manager) Room(id string) (*room.Room, error) {
	if r, ok := m.rooms.Load(id); ok {
		return r.(*room.Room), nil
	}

	m.createMu.Lock()
	defer m.createMu.Unlock()

	// Someone else may have created it while we waited.
	if r, ok := m.rooms.Load(id); ok {
		return r.(*room.Room), nil
	}

	tpl := m.stores.Rooms.Get(id)
	if tpl == nil {
		return nil, fmt.Errorf("no such room: %s", id)
	}
	var zone *game.ZoneTemplate
	if m.stores.Zones != nil {
		zone = m.stores.Zones.Get(tpl.ZoneID)
	}

	r := room.New(id, tpl, zone, room.WithRespawn(m.onRespawn))
	r.Start()
	m.rooms.Store(id, r)

	// Initial population happens off the caller's goroutine, same path as
	// respawn.
	go m.populate(r, tpl)

	slog.Info("room loaded", "room", id, "zone", tpl.ZoneID)
	return r, nil
}

// populate applies spawn rules and restores persisted ground items when a
// room first loads.
func (m *Manager) populate(r *room.Room, tpl *game.RoomTemplate) {
	m.spawnMobs(r, tpl.MobSpawns)

	for _, rule := range tpl.ItemSpawns {
		if rule.Chance > 0 && m.randFn() >= rule.Chance {
			continue
		}
		itemTpl := m.stores.Items.Get(rule.ID)
		if itemTpl == nil {
			slog.Warn("item spawn references unknown template", "room", r.ID(), "item", rule.ID)
			continue
		}
		for range max(rule.Count, 1) {
			r.DropItem(game.NewItem(rule.ID, itemTpl))
		}
	}

	if m.source == nil {
		return
	}
	rec, err := m.source.GetRoom(r.ID())
	if err != nil {
		slog.Error("restoring room items", "room", r.ID(), "error", err)
		return
	}
	if rec != nil {
		for _, item := range m.rebuildItems(rec.Items) {
			r.DropItem(item)
		}
	}
}

// onRespawn runs on the room's goroutine; spawning asks the room to accept
// the new mobs, so the work moves to its own goroutine.
func (m *Manager) onRespawn(r *room.Room, deficits []game.SpawnRule) {
	go m.spawnMobs(r, deficits)
}

func (m *Manager) spawnMobs(r *room.Room, rules []game.SpawnRule) {
	for _, rule := range rules {
		if rule.Chance > 0 && m.randFn() >= rule.Chance {
			continue
		}
		tpl := m.stores.Mobs.Get(rule.ID)
		if tpl == nil {
			slog.Warn("mob spawn references unknown template", "room", r.ID(), "mob", rule.ID)
			continue
		}
		for range max(rule.Count, 1) {
			mob := m.newMob(rule.ID, tpl)
			mob.Start()
			if err := r.Enter(mob, ""); err != nil {
				slog.Error("placing spawned mob", "room", r.ID(), "mob", rule.ID, "error", err)
				mob.Stop()
			}
		}
	}
}

func (m *Manager) newMob(templateID string, tpl *game.MobTemplate) *living.Entity {
	mob := living.NewMob(templateID, tpl,
		living.WithResolver(m.resolver),
		living.WithHooks(living.Hooks{
			OnDeath: func(e *living.Entity, killerID string) {
				if tpl.ExpReward > 0 {
					if killer, ok := m.FindPlayer(killerID); ok {
						killer.Send(living.GainExpMsg{Amount: tpl.ExpReward})
					}
				}
				// Dead mobs halt; the zone respawn sweep replaces them.
				e.Stop()
			},
		}),
	)

	// Outfit the mob from its template before the mailbox starts.
	for slot, itemID := range tpl.Equipment {
		itemTpl := m.stores.Items.Get(itemID)
		if itemTpl == nil {
			continue
		}
		if err := mob.Equipment().Equip(slot, game.NewItem(itemID, itemTpl)); err != nil {
			slog.Warn("mob template equipment conflict", "mob", templateID, "slot", slot)
		}
	}
	for _, itemID := range tpl.Inventory {
		if itemTpl := m.stores.Items.Get(itemID); itemTpl != nil {
			mob.Inventory().Add(game.NewItem(itemID, itemTpl))
		}
	}
	mob.Stats().Recalculate(mob.Equipment())

	return mob
}

// BroadcastToRoom pushes a line to every player in a room, minus one.
func (m *Manager) BroadcastToRoom(roomID, text, excludeID string) {
	if r, ok := m.rooms.Load(roomID); ok {
		r.(*room.Room).BroadcastToOthers(excludeID, text)
	}
}

// FindPlayer resolves an online player by character id.
func (m *Manager) FindPlayer(id string) (*living.Entity, bool) {
	if e, ok := m.players.Load(id); ok {
		return e.(*living.Entity), true
	}
	return nil, false
}

// RegisterPlayer makes a player addressable by character id. Returns the
// previous holder for reconnect takeover.
func (m *Manager) RegisterPlayer(e *living.Entity) *living.Entity {
	old, loaded := m.players.Swap(e.ID(), e)
	if !loaded {
		return nil
	}
	return old.(*living.Entity)
}

func (m *Manager) UnregisterPlayer(id string) {
	m.players.Delete(id)
}

// ForEachPlayer visits every registered player.
func (m *Manager) ForEachPlayer(fn func(e *living.Entity)) {
	m.players.Range(func(_, v any) bool {
		fn(v.(*living.Entity))
		return true
	})
}

// OnlinePlayers returns the names of everyone currently registered.
func (m *Manager) OnlinePlayers() []string {
	var names []string
	m.players.Range(func(_, v any) bool {
		names = append(names, v.(*living.Entity).Name())
		return true
	})
	return names
}

// Hooks builds the world-side callbacks for one player entity.
func (m *Manager) Hooks() living.Hooks {
	return living.Hooks{
		OnEnterWorld: m.onEnterWorld,
		OnDeath:      m.onPlayerDeath,
		OnDirty:      m.onDirty,
	}
}

// onEnterWorld finishes login on the player's goroutine: restore the
// character, register it, walk into the world and look around.
func (m *Manager) onEnterWorld(e *living.Entity, u *living.User) {
	roomID := m.startRoomID

	rec, err := m.loadCharacter(u.CharacterID)
	if err != nil {
		slog.Error("loading character", "character", u.CharacterID, "error", err)
	}
	if rec != nil {
		e.Rename(rec.DisplayName)
		*e.Stats() = rec.Stats
		for _, item := range m.rebuildItems(rec.Inventory) {
			e.Inventory().Add(item)
		}
		for slot, snap := range rec.Equipment {
			if items := m.rebuildItems([]persist.ItemSnapshot{snap}); len(items) == 1 {
				if err := e.Equipment().Equip(slot, items[0]); err != nil {
					e.Inventory().Add(items[0])
				}
			}
		}
		if rec.RoomID != "" {
			roomID = rec.RoomID
		}
	} else {
		e.Rename(display.Capitalize(u.Name))
		*e.Stats() = newCharacterStats()
	}
	e.Stats().Recalculate(e.Equipment())

	if old := m.RegisterPlayer(e); old != nil && old != e {
		old.Stop()
	}

	r, err := m.Room(roomID)
	if err != nil {
		slog.Error("start room missing", "room", roomID, "error", err)
		return
	}
	if err := r.Enter(e, ""); err != nil {
		slog.Error("entering start room", "room", roomID, "error", err)
		return
	}

	if text, err := r.Look(e); err == nil {
		e.Reply(text)
	}
	m.onDirty(e)
}

func (m *Manager) loadCharacter(id string) (*persist.CharacterRecord, error) {
	if m.source == nil {
		return nil, nil
	}
	return m.source.GetCharacter(id)
}

// onPlayerDeath revives the player at the starting room. The death handler
// already dropped the corpse and removed the room membership.
func (m *Manager) onPlayerDeath(e *living.Entity, killerID string) {
	e.Send(living.ReviveMsg{})
	go func() {
		r, err := m.Room(m.startRoomID)
		if err != nil {
			slog.Error("revive room missing", "room", m.startRoomID, "error", err)
			return
		}
		if err := r.Enter(e, ""); err != nil {
			slog.Error("placing revived player", "error", err)
			return
		}
		e.Reply("You awaken, sore but alive.")
		if text, err := r.Look(e); err == nil {
			e.Reply(text)
		}
	}()
}

// onDirty snapshots the entity for the write-behind queue. Runs on the
// entity's goroutine, so reading its state here is safe.
func (m *Manager) onDirty(e *living.Entity) {
	if m.saver == nil || e.Kind() != living.KindPlayer {
		return
	}
	m.saver.SaveAsync(m.snapshotPlayer(e))
}

func (m *Manager) snapshotPlayer(e *living.Entity) *persist.CharacterRecord {
	roomID := ""
	if r := e.Room(); r != nil {
		roomID = r.ID()
	}

	rec := &persist.CharacterRecord{
		ID:          e.ID(),
		Name:        e.ID(),
		DisplayName: e.Name(),
		RoomID:      roomID,
		Stats:       *e.Stats(),
		Inventory:   persist.SnapshotItems(e.Inventory().Items()),
	}

	eqSnap := make(map[game.Slot]persist.ItemSnapshot)
	e.Equipment().Each(func(slot game.Slot, item *game.Item) {
		snaps := persist.SnapshotItems([]*game.Item{item})
		eqSnap[slot] = snaps[0]
	})
	if len(eqSnap) > 0 {
		rec.Equipment = eqSnap
	}
	return rec
}

// SaveAll sweeps every online player and active room into the write-behind
// queue. Player snapshots go through each entity's mailbox so state reads
// stay on the owning goroutine; the wait is bounded so a wedged entity
// cannot stall shutdown.
func (m *Manager) SaveAll() {
	if m.saver == nil {
		return
	}

	var targets []*living.Entity
	m.players.Range(func(_, v any) bool {
		targets = append(targets, v.(*living.Entity))
		return true
	})

	done := make(chan struct{}, len(targets))
	for _, e := range targets {
		e.Send(living.SaveMsg{Reply: done})
	}

	deadline := time.After(2 * time.Second)
wait:
	for range targets {
		select {
		case <-done:
		case <-deadline:
			slog.Warn("save sweep timed out waiting for players")
			break wait
		}
	}

	m.rooms.Range(func(_, v any) bool {
		m.SnapshotRoom(v.(*room.Room))
		return true
	})
}

// SnapshotRoom records a room's dropped items for persistence.
func (m *Manager) SnapshotRoom(r *room.Room) {
	if m.saver == nil {
		return
	}
	snap, err := r.Snapshot()
	if err != nil {
		slog.Error("snapshotting room", "room", r.ID(), "error", err)
		return
	}
	zoneID := ""
	if tpl := m.stores.Rooms.Get(r.ID()); tpl != nil {
		zoneID = tpl.ZoneID
	}
	m.saver.SaveAsync(&persist.RoomRecord{
		RoomID: r.ID(),
		ZoneID: zoneID,
		Items:  persist.SnapshotItems(snap.Items),
	})
}

func (m *Manager) rebuildItems(snaps []persist.ItemSnapshot) []*game.Item {
	var out []*game.Item
	for _, snap := range snaps {
		tpl := m.stores.Items.Get(snap.TemplateID)
		if tpl == nil && snap.TemplateID != "corpse" {
			slog.Warn("dropping item with unknown template", "template", snap.TemplateID)
			continue
		}
		item := &game.Item{
			InstanceID: snap.InstanceID,
			TemplateID: snap.TemplateID,
			Template:   tpl,
			Count:      max(snap.Count, 1),
			Contents:   m.rebuildItems(snap.Contents),
		}
		out = append(out, item)
	}
	return out
}

// newCharacterStats is the starting block for a fresh character.
func newCharacterStats() game.LivingStats {
	s := game.LivingStats{
		Level: 1,
		HP:    100, MaxHP: 100,
		MP: 50, MaxMP: 50,
		Stamina: 100, MaxStamina: 100,
		Attributes: game.Attributes{
			Strength: 10, Intellect: 10, Dexterity: 10, Constitution: 10,
		},
		BaseMinDamage:   2,
		BaseMaxDamage:   5,
		BaseDefense:     0,
		BaseAttackSpeed: newCharacterAttackSpeed,
	}
	return s
}
