package living

import "time"

// Message is the closed set of operations a living entity accepts. Every
// variant is handled in Entity.handle; senders construct values and enqueue
// them via Entity.Send.
type Message interface {
	livingMessage()
}

// TickMsg is the world heartbeat, forwarded by the entity's room.
type TickMsg struct {
	Count uint64
	Now   time.Time
}

// CommandMsg carries one line of player input.
type CommandMsg struct {
	TraceID string
	Text    string
}

// OnAttackedMsg tells the entity someone has engaged it in combat.
type OnAttackedMsg struct {
	AttackerID   string
	AttackerName string
}

// OnDamageMsg applies resolved damage from an attacker.
type OnDamageMsg struct {
	Amount       int
	AttackerID   string
	AttackerName string
}

// DieMsg forces a death transition regardless of remaining hp.
type DieMsg struct {
	KillerID string
}

// HealMsg restores hit points. Ignored while dead or in combat.
type HealMsg struct {
	Amount int
}

// EquipMsg asks the entity to wear the first inventory item matching the
// query. The human-readable outcome is resolved onto Reply.
type EquipMsg struct {
	Query string
	Reply chan string
}

// UnequipMsg asks the entity to remove the first equipped item matching the
// query, returning it to inventory.
type UnequipMsg struct {
	Query string
	Reply chan string
}

// SendTextMsg pushes a line of output to the entity's connection, if any.
type SendTextMsg struct {
	Text string
}

// PlayerEnteredMsg notifies a mob that a player arrived in its room, for
// aggro scanning.
type PlayerEnteredMsg struct {
	PlayerID   string
	PlayerName string
}

// ReviveMsg clears the dead state and restores the entity to a fraction of
// its maximum hit points.
type ReviveMsg struct{}

// GainExpMsg awards experience for a kill.
type GainExpMsg struct {
	Amount int
}

// SaveMsg forces a persistence snapshot on the entity's goroutine. Reply, if
// non-nil, receives once the snapshot has been handed to the write queue;
// logout uses this to flush before stopping the mailbox.
type SaveMsg struct {
	Reply chan struct{}
}

func (TickMsg) livingMessage()          {}
func (CommandMsg) livingMessage()       {}
func (OnAttackedMsg) livingMessage()    {}
func (OnDamageMsg) livingMessage()      {}
func (DieMsg) livingMessage()           {}
func (HealMsg) livingMessage()          {}
func (EquipMsg) livingMessage()         {}
func (UnequipMsg) livingMessage()       {}
func (SendTextMsg) livingMessage()      {}
func (PlayerEnteredMsg) livingMessage() {}
func (ReviveMsg) livingMessage()        {}
func (GainExpMsg) livingMessage()       {}
func (SaveMsg) livingMessage()          {}
