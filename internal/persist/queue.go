package persist

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultBatchSize is how many records trigger an eager flush.
	DefaultBatchSize = 50
	// DefaultMaxDrain caps how many records one flush may carry when the
	// queue has built up a backlog.
	DefaultMaxDrain = 100
	// DefaultFlushInterval bounds how long an under-filled batch waits.
	DefaultFlushInterval = 5 * time.Second
	// DefaultCapacity bounds the pending queue; enqueues past it are
	// dropped and logged as a data-loss risk.
	DefaultCapacity = 10000
)

// Queue decouples actors from durable storage. SaveAsync enqueues a snapshot
// and returns immediately; a single consumer goroutine drains, batches, and
// flushes. Shutdown drains everything already acknowledged.
type Queue struct {
	store Store

	batchSize     int
	maxDrain      int
	flushInterval time.Duration
	capacity      int

	mu      sync.Mutex
	pending []Record
	closed  bool
	wake    chan struct{}
}

type QueueOpt func(*Queue)

func WithBatchSize(n int) QueueOpt {
	return func(q *Queue) { q.batchSize = n }
}

func WithMaxDrain(n int) QueueOpt {
	return func(q *Queue) { q.maxDrain = n }
}

func WithFlushInterval(d time.Duration) QueueOpt {
	return func(q *Queue) { q.flushInterval = d }
}

func WithCapacity(n int) QueueOpt {
	return func(q *Queue) { q.capacity = n }
}

func NewQueue(store Store, opts ...QueueOpt) *Queue {
	q := &Queue{
		store:         store,
		batchSize:     DefaultBatchSize,
		maxDrain:      DefaultMaxDrain,
		flushInterval: DefaultFlushInterval,
		capacity:      DefaultCapacity,
		wake:          make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(q)
	}
	return q
}

// SaveAsync enqueues a snapshot and returns immediately. An overflowing
// queue drops the record; retrying synchronously would block the actor.
func (q *Queue) SaveAsync(rec Record) {
	if rec == nil {
		return
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		slog.Error("persistence queue closed, dropping record", "key", rec.Key())
		return
	}
	if len(q.pending) >= q.capacity {
		q.mu.Unlock()
		slog.Error("persistence queue full, dropping record", "key", rec.Key())
		return
	}
	q.pending = append(q.pending, rec)
	full := len(q.pending) >= q.batchSize
	q.mu.Unlock()

	if full {
		select {
		case q.wake <- struct{}{}:
		default:
		}
	}
}

// Pending reports the current backlog size.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Start runs the consumer until ctx is cancelled, then drains the queue
// completely so no acknowledged write is lost on shutdown.
func (q *Queue) Start(ctx context.Context) error {
	ticker := time.NewTicker(q.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			q.drainAll()
			return nil
		case <-q.wake:
			q.flushOnce()
		case <-ticker.C:
			q.flushOnce()
		}
	}
}

// take removes up to n records from the front of the queue.
func (q *Queue) take(n int) []Record {
	q.mu.Lock()
	defer q.mu.Unlock()

	if n > len(q.pending) {
		n = len(q.pending)
	}
	if n == 0 {
		return nil
	}
	batch := make([]Record, n)
	copy(batch, q.pending[:n])
	q.pending = q.pending[n:]
	return batch
}

// flushOnce writes one opportunistic batch: at least batchSize worth when
// available, up to maxDrain when there is a backlog.
func (q *Queue) flushOnce() {
	batch := q.take(q.maxDrain)
	if len(batch) == 0 {
		return
	}
	q.flush(batch)
}

// Close flushes everything still pending and stops accepting records. The
// shutdown sweep calls it after handing over its final snapshots; the
// consumer's own context may already be done by then, so the final drain
// cannot be left to Start alone.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.drainAll()
}

func (q *Queue) drainAll() {
	for {
		batch := q.take(q.maxDrain)
		if len(batch) == 0 {
			return
		}
		q.flush(batch)
	}
}

func (q *Queue) flush(batch []Record) {
	if err := q.store.PutBatch(batch); err != nil {
		slog.Error("flushing persistence batch", "size", len(batch), "error", err)
		return
	}
	slog.Debug("flushed persistence batch", "size", len(batch))
}

// String describes the queue for logs.
func (q *Queue) String() string {
	return fmt.Sprintf("persist.Queue(batch=%d)", q.batchSize)
}
