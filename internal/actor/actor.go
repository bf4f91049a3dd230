package actor

import (
	"log/slog"
	"sync"
)

// Mailbox is the execution primitive shared by every entity in the game.
// Send enqueues without ever blocking the caller; a single goroutine owned
// by the mailbox dequeues and handles one message at a time, so state touched
// only from the handler needs no locking.
type Mailbox[T any] struct {
	id     string
	handle func(T)

	mu    sync.Mutex
	queue []T

	wake chan struct{}
	stop chan struct{}
	done chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewMailbox creates a mailbox for the given actor id. The handler is invoked
// sequentially on the mailbox's own goroutine once Start is called.
func NewMailbox[T any](id string, handle func(T)) *Mailbox[T] {
	return &Mailbox[T]{
		id:     id,
		handle: handle,
		wake:   make(chan struct{}, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// ID returns the actor identity this mailbox was created with.
func (m *Mailbox[T]) ID() string {
	return m.id
}

// Start launches the processing goroutine. Subsequent calls are no-ops.
func (m *Mailbox[T]) Start() {
	m.startOnce.Do(func() {
		go m.run()
	})
}

// Send enqueues a message and returns immediately. Messages sent after Stop
// are dropped.
func (m *Mailbox[T]) Send(msg T) {
	select {
	case <-m.stop:
		return
	default:
	}

	m.mu.Lock()
	m.queue = append(m.queue, msg)
	m.mu.Unlock()

	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// Stop requests loop termination. The in-flight message finishes; queued
// messages are discarded. Safe to call multiple times.
func (m *Mailbox[T]) Stop() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
}

// Done is closed once the processing goroutine has exited.
func (m *Mailbox[T]) Done() <-chan struct{} {
	return m.done
}

// Stopped reports whether Stop has been called.
func (m *Mailbox[T]) Stopped() bool {
	select {
	case <-m.stop:
		return true
	default:
		return false
	}
}

func (m *Mailbox[T]) run() {
	defer close(m.done)

	for {
		m.mu.Lock()
		if len(m.queue) == 0 {
			m.mu.Unlock()
			select {
			case <-m.wake:
				continue
			case <-m.stop:
				return
			}
		}
		msg := m.queue[0]
		m.queue = m.queue[1:]
		m.mu.Unlock()

		select {
		case <-m.stop:
			return
		default:
		}

		m.dispatch(msg)
	}
}

// dispatch runs the handler for one message. A panicking handler is logged
// and the loop continues; one bad message must never take the actor down.
func (m *Mailbox[T]) dispatch(msg T) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("actor message handler panicked", "actor", m.id, "panic", r)
		}
	}()
	m.handle(msg)
}
