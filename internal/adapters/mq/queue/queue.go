// Package queue defines the contract for enqueuing and consuming possessions.
//
// The in-memory implementation is a bounded channel; workers drain it until
// the session closes the queue.
package queue

import (
	"context"
	"sync"

	"github.com/courtside/fastbreak/internal/domain/model"
	"github.com/courtside/fastbreak/pkg/metrics"
)

// Default queue configuration constants.
const defaultQueueCapacity = 10_000

// Possession is the payload type flowing through the queue.
type Possession = model.Possession

// Queue provides non-blocking enqueue and channel-based dequeue semantics.
type Queue interface {
	// Enqueue adds a possession. Returns false if the queue is full or closed.
	Enqueue(ctx context.Context, p Possession) bool

	// Dequeue returns the channel workers consume from. The channel is
	// closed when the queue is closed and drained.
	Dequeue(ctx context.Context) <-chan Possession

	// Len returns the current number of queued possessions.
	Len(ctx context.Context) int

	// Close stops new enqueues; queued possessions remain consumable.
	Close() error

	// IsClosed reports whether the queue has been closed.
	IsClosed() bool
}

// InMemoryQueue implements Queue using a buffered channel.
type InMemoryQueue struct {
	possessions chan Possession
	capacity    int
	mu          sync.RWMutex
	closed      bool
}

// NewInMemoryQueue creates a queue with configuration options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{capacity: defaultQueueCapacity}
	for _, opt := range opts {
		opt(q)
	}
	q.possessions = make(chan Possession, q.capacity)

	metrics.UpdateQueueCapacity(q.capacity)
	metrics.UpdateQueueSize(0)
	return q
}

// Enqueue adds a possession to the queue.
func (q *InMemoryQueue) Enqueue(_ context.Context, p Possession) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.RecordQueueEnqueueError()
		return false
	}
	select {
	case q.possessions <- p:
		metrics.UpdateQueueSize(len(q.possessions))
		return true
	default:
		metrics.RecordQueueEnqueueError()
		return false
	}
}

// Dequeue returns the consumption channel.
func (q *InMemoryQueue) Dequeue(_ context.Context) <-chan Possession {
	return q.possessions
}

// Len returns the current queue depth.
func (q *InMemoryQueue) Len(_ context.Context) int {
	return len(q.possessions)
}

// Close stops new enqueues and closes the channel so workers drain and exit.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	q.closed = true
	close(q.possessions)
	return nil
}

// IsClosed reports whether Close has been called.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
