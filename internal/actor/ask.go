package actor

import (
	"errors"
	"time"
)

// DefaultAskTimeout is how long a caller waits on a reply channel before
// treating the target actor as unreachable.
const DefaultAskTimeout = time.Second

// ErrUnreachable is returned when an ask-pattern call times out. Callers are
// expected to take a degraded path (drop the interaction, disengage combat)
// rather than retry.
var ErrUnreachable = errors.New("actor did not respond")

// NewReply creates the buffered reply channel embedded in ask-style messages.
// The buffer lets the target resolve the reply without blocking even if the
// caller has already given up.
func NewReply[R any]() chan R {
	return make(chan R, 1)
}

// Await blocks until the reply arrives or the timeout elapses. A zero timeout
// uses DefaultAskTimeout.
func Await[R any](reply <-chan R, timeout time.Duration) (R, error) {
	if timeout <= 0 {
		timeout = DefaultAskTimeout
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case r := <-reply:
		return r, nil
	case <-timer.C:
		var zero R
		return zero, ErrUnreachable
	}
}
