package living

// ConnState is a player's position in the connection flow. Exactly one state
// is active at a time; input that makes no sense for the current state is
// dropped, never fatal. Link-dead is an overlay flag on the entity, not a
// state of its own.
type ConnState int

const (
	StateConnected ConnState = iota
	StateCreatingUsername
	StateCreatingPassword
	StateEnteringPassword
	StateInGame
)

// Behavior is the strategy owning input interpretation for an entity.
// Players swap behaviors at runtime (login flow then in-game); mobs get one
// behavior at spawn from their template flags. All methods run on the
// entity's goroutine.
type Behavior interface {
	// Greet runs when the entity becomes this behavior.
	Greet(e *Entity)

	// HandleInput consumes one line of input.
	HandleInput(e *Entity, input string)

	// OnTick runs on every world heartbeat delivered to the entity.
	OnTick(e *Entity, m TickMsg)

	// OnPlayerEntered reacts to a player arriving in the entity's room.
	OnPlayerEntered(e *Entity, m PlayerEnteredMsg)

	// Fights reports whether the entity may engage in combat at all.
	Fights() bool
}

// BaseBehavior provides no-op defaults for embedding.
type BaseBehavior struct{}

func (BaseBehavior) Greet(*Entity)                          {}
func (BaseBehavior) HandleInput(*Entity, string)            {}
func (BaseBehavior) OnTick(*Entity, TickMsg)                {}
func (BaseBehavior) OnPlayerEntered(*Entity, PlayerEnteredMsg) {}
func (BaseBehavior) Fights() bool                           { return false }
