package living

// NewPlayer builds the actor for one connected player. The caller installs
// the initial behavior (normally GuestBehavior) with Become before Start;
// nothing is concurrent until the mailbox launches.
func NewPlayer(id, name string, out Output, opts ...Opt) *Entity {
	e := newEntity(id, name, KindPlayer, opts...)
	e.out = out
	return e
}

// Rename updates the display name once authentication resolves the real
// character. Called before the player enters the world.
func (e *Entity) Rename(name string) {
	e.name = name
}

// BeginPlay skips the login conversation and drops the entity straight into
// the in-game behavior. The session layer uses this for the real character
// entity once its account has authenticated on a throwaway login actor.
// Must run before Start or on the entity's own goroutine.
func (e *Entity) BeginPlay(dispatcher Dispatcher) {
	e.inGame.Store(true)
	e.Become(NewInGameBehavior(dispatcher))
}
