package living

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pixil98/go-mudcore/internal/actor"
	"github.com/pixil98/go-mudcore/internal/combat"
	"github.com/pixil98/go-mudcore/internal/game"
)

// Kind distinguishes the two living actor families.
type Kind int

const (
	KindPlayer Kind = iota
	KindMob
)

// regenInterval is how many world ticks pass between passive regeneration
// pulses, and regenFraction the share of max hp restored each pulse.
const (
	regenInterval = 3
	regenFraction = 0.05
)

// Hooks are callbacks into the world layer for transitions the entity cannot
// complete on its own. All hooks run on the entity's goroutine and must not
// block on the entity itself.
type Hooks struct {
	// OnDeath runs after the death transition completes (corpse dropped,
	// room membership removed).
	OnDeath func(e *Entity, killerID string)

	// OnEnterWorld runs when a player finishes authentication.
	OnEnterWorld func(e *Entity, u *User)

	// OnDirty marks the entity for write-behind persistence.
	OnDirty func(e *Entity)
}

// Entity is the actor behind every player and mob. All mutable fields below
// the mailbox are owned by the mailbox goroutine; the few cross-actor reads
// (combat flag, validity, room pointer) go through atomics or the room mutex.
type Entity struct {
	id   string
	name string
	kind Kind

	mb *actor.Mailbox[Message]

	stats *game.LivingStats
	inv   *game.Inventory
	eq    *game.Equipment

	behavior Behavior
	resolver *combat.Resolver
	hooks    Hooks

	out   Output
	outMu sync.Mutex

	roomMu sync.Mutex
	room   Room

	inCombat atomic.Bool
	invalid  atomic.Bool
	linkDead atomic.Bool
	inGame   atomic.Bool

	// Combat bookkeeping, mailbox goroutine only.
	targetID   string
	nextAttack time.Time
	aggro      *combat.AggroTable

	// Mob-only template reference and the id it was spawned from.
	mobTemplate *game.MobTemplate
	templateID  string
}

type Opt func(*Entity)

// WithResolver replaces the default combat resolver.
func WithResolver(r *combat.Resolver) Opt {
	return func(e *Entity) {
		e.resolver = r
	}
}

// WithHooks installs world-layer callbacks.
func WithHooks(h Hooks) Opt {
	return func(e *Entity) {
		e.hooks = h
	}
}

// WithStats replaces the starting stats.
func WithStats(s *game.LivingStats) Opt {
	return func(e *Entity) {
		e.stats = s
	}
}

func newEntity(id, name string, kind Kind, opts ...Opt) *Entity {
	e := &Entity{
		id:       id,
		name:     name,
		kind:     kind,
		stats:    &game.LivingStats{HP: 1, MaxHP: 1},
		inv:      game.NewInventory(),
		eq:       game.NewEquipment(),
		resolver: combat.NewResolver(),
	}
	e.mb = actor.NewMailbox(id, e.handle)

	for _, o := range opts {
		o(e)
	}

	return e
}

// Start launches the entity's mailbox goroutine.
func (e *Entity) Start() {
	e.mb.Start()
}

// Stop halts message processing. Queued messages are discarded.
func (e *Entity) Stop() {
	e.mb.Stop()
}

// Send enqueues a message for the entity. Never blocks.
func (e *Entity) Send(msg Message) {
	e.mb.Send(msg)
}

func (e *Entity) ID() string   { return e.id }
func (e *Entity) Name() string { return e.name }
func (e *Entity) Kind() Kind   { return e.kind }

// CombatID and CombatName let the entity act as a combat.Combatant.
func (e *Entity) CombatID() string   { return e.id }
func (e *Entity) CombatName() string { return e.name }

// Stats exposes the stat block for combat resolution. Writers must be on the
// entity's own goroutine.
func (e *Entity) Stats() *game.LivingStats { return e.stats }

// Valid reports whether the entity is still alive and in play.
func (e *Entity) Valid() bool {
	return !e.invalid.Load()
}

// InCombat reports the combat flag. Used by rooms for tick gating.
func (e *Entity) InCombat() bool {
	return e.inCombat.Load()
}

// InGame reports whether a player has finished the login flow.
func (e *Entity) InGame() bool {
	return e.inGame.Load()
}

// LinkDead reports whether the player's socket is currently detached.
func (e *Entity) LinkDead() bool {
	return e.linkDead.Load()
}

// SetLinkDead toggles the link-dead overlay state.
func (e *Entity) SetLinkDead(v bool) {
	e.linkDead.Store(v)
}

// Room returns the entity's current room, or nil before the first Enter.
func (e *Entity) Room() Room {
	e.roomMu.Lock()
	defer e.roomMu.Unlock()
	return e.room
}

// SetRoom records the entity's current location. Only room Enter/Leave
// handlers call this; entity code never mutates room membership directly.
func (e *Entity) SetRoom(r Room) {
	e.roomMu.Lock()
	e.room = r
	e.roomMu.Unlock()
}

// MobTemplate returns the template a mob was spawned from, or nil for
// players.
func (e *Entity) MobTemplate() *game.MobTemplate {
	return e.mobTemplate
}

// TemplateID returns the asset id a mob was spawned from, empty for players.
func (e *Entity) TemplateID() string {
	return e.templateID
}

// Inventory and Equipment are owned by the mailbox goroutine; command
// handlers may use them because dispatch runs inside the entity's handler.
func (e *Entity) Inventory() *game.Inventory { return e.inv }
func (e *Entity) Equipment() *game.Equipment { return e.eq }

// Reply writes a line straight to the entity's connection. Safe from any
// goroutine; mobs discard output.
func (e *Entity) Reply(text string) {
	e.outMu.Lock()
	out := e.out
	e.outMu.Unlock()
	if out == nil {
		return
	}
	if err := out.WriteLine(text); err != nil {
		slog.Debug("dropping output line", "entity", e.id, "error", err)
	}
}

// BindOutput attaches a connection, returning the previous one so the caller
// can close it. Used on login and on reconnect takeover.
func (e *Entity) BindOutput(out Output) Output {
	e.outMu.Lock()
	old := e.out
	e.out = out
	e.outMu.Unlock()
	return old
}

// Output returns the currently bound connection. Sessions use this to tell
// whether a disconnect still concerns them after a reconnect takeover.
func (e *Entity) Output() Output {
	e.outMu.Lock()
	defer e.outMu.Unlock()
	return e.out
}

// CloseOutput force-closes the bound connection, if any. The session read
// loop notices and runs its normal disconnect path.
func (e *Entity) CloseOutput() {
	e.outMu.Lock()
	out := e.out
	e.outMu.Unlock()
	if out != nil {
		_ = out.Close()
	}
}

// Become swaps the behavior that interprets this entity's input. Must only
// be called from the entity's own goroutine.
func (e *Entity) Become(b Behavior) {
	e.behavior = b
	if b != nil {
		b.Greet(e)
	}
}

// handle is the mailbox handler. The switch is exhaustive over the message
// union; unknown variants are logged, never fatal.
func (e *Entity) handle(msg Message) {
	switch m := msg.(type) {
	case TickMsg:
		e.onTick(m)
	case CommandMsg:
		e.onCommand(m)
	case OnAttackedMsg:
		e.onAttacked(m)
	case OnDamageMsg:
		e.onDamage(m)
	case DieMsg:
		e.die(m.KillerID)
	case HealMsg:
		e.onHeal(m)
	case EquipMsg:
		m.Reply <- e.doEquip(m.Query)
	case UnequipMsg:
		m.Reply <- e.doUnequip(m.Query)
	case SendTextMsg:
		e.Reply(m.Text)
	case PlayerEnteredMsg:
		e.onPlayerEntered(m)
	case ReviveMsg:
		e.revive()
	case GainExpMsg:
		e.onGainExp(m)
	case SaveMsg:
		e.markDirty()
		if m.Reply != nil {
			m.Reply <- struct{}{}
		}
	default:
		slog.Warn("unhandled living message", "entity", e.id, "type", msg)
	}
}

func (e *Entity) onCommand(m CommandMsg) {
	if e.behavior == nil {
		return
	}
	e.behavior.HandleInput(e, m.Text)
}

func (e *Entity) onHeal(m HealMsg) {
	if !e.Valid() || !e.stats.Alive() {
		return
	}
	// No healing while swinging.
	if e.inCombat.Load() {
		e.Reply("You cannot rest while fighting!")
		return
	}
	e.stats.Heal(m.Amount)
	e.markDirty()
}

func (e *Entity) onGainExp(m GainExpMsg) {
	if !e.Valid() || m.Amount <= 0 {
		return
	}
	e.stats.Experience += m.Amount
	e.Reply(fmt.Sprintf("You gain %d experience.", m.Amount))
	e.markDirty()
}

func (e *Entity) revive() {
	if e.stats.Alive() {
		return
	}
	e.invalid.Store(false)
	e.stats.HP = e.stats.MaxHP / 2
	if e.stats.HP < 1 {
		e.stats.HP = 1
	}
	e.markDirty()
}

func (e *Entity) markDirty() {
	if e.hooks.OnDirty != nil {
		e.hooks.OnDirty(e)
	}
}
