// Package queue provides job queue functionality for background processing.
package queue

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatsJob asks for the stats of one church to be recounted.
type StatsJob struct {
	ChurchID   primitive.ObjectID
	RetryCount int
}

// MemoryQueue is a bounded in-memory job queue.
type MemoryQueue struct {
	jobs     chan StatsJob
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewMemoryQueue creates a new in-memory queue with the given capacity.
func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{
		jobs:     make(chan StatsJob, capacity),
		capacity: capacity,
	}
}

// Enqueue adds a job without blocking. It fails with ErrQueueFull or
// ErrQueueClosed. The read lock is held across the send so Close cannot race it.
func (q *MemoryQueue) Enqueue(job StatsJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue blocks until a job is available. Jobs buffered before Close are
// still returned; ErrQueueClosed follows once the buffer is empty.
func (q *MemoryQueue) Dequeue(ctx context.Context) (StatsJob, error) {
	select {
	case <-ctx.Done():
		return StatsJob{}, ctx.Err()
	case job, ok := <-q.jobs:
		if !ok {
			return StatsJob{}, ErrQueueClosed
		}
		return job, nil
	}
}

// Close closes the queue. No more jobs can be enqueued after closing.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}

// Len returns the current number of jobs in the queue.
func (q *MemoryQueue) Len() int {
	return len(q.jobs)
}

// Capacity returns the queue capacity.
func (q *MemoryQueue) Capacity() int {
	return q.capacity
}
