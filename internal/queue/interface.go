package queue

import (
	"context"
	"errors"
)

var (
	// ErrQueueFull means the recount is dropped; the next write to the same
	// church enqueues it again.
	ErrQueueFull = errors.New("stats queue is full")
	// ErrQueueClosed is returned once the processor has shut the queue down.
	ErrQueueClosed = errors.New("stats queue is closed")
)

// Queue buffers stats recounts between writers and the processor workers.
type Queue interface {
	Enqueue(job StatsJob) error
	// Dequeue blocks until a job arrives, ctx ends or the queue closes.
	Dequeue(ctx context.Context) (StatsJob, error)
	Close()
	Len() int
	Capacity() int
}

var _ Queue = (*MemoryQueue)(nil)
