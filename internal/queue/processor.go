package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ceslar/internal/models"
	"ceslar/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// MaxRetries is the maximum number of attempts for one recount.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = 2 * time.Second
	// JobTimeout bounds a single recount.
	JobTimeout = 10 * time.Second
)

// CountFunc counts documents of one kind belonging to a church.
type CountFunc func(ctx context.Context, churchID primitive.ObjectID) (int, error)

// Counters are the counts that make up models.ChurchStats.
type Counters struct {
	Members CountFunc
	Events  CountFunc
	Sermons CountFunc
}

// StatsUpdater persists recounted stats onto the church document.
type StatsUpdater interface {
	UpdateStats(ctx context.Context, id primitive.ObjectID, stats models.ChurchStats) error
}

// Processor recounts church stats in the background.
type Processor struct {
	queue        Queue
	counters     Counters
	updater      StatsUpdater
	workerCount  int
	retryDelay   time.Duration
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a stats processor with workerCount workers.
func NewProcessor(queue Queue, counters Counters, updater StatsUpdater, workerCount int) *Processor {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Processor{
		queue:       queue,
		counters:    counters,
		updater:     updater,
		workerCount: workerCount,
		retryDelay:  RetryDelay,
		shutdownCh:  make(chan struct{}),
	}
}

// EnqueueRecount schedules a stats recount for churchID. A full or closed
// queue drops the job; stats catch up on the next write to that church.
func (p *Processor) EnqueueRecount(churchID primitive.ObjectID) {
	if err := p.queue.Enqueue(StatsJob{ChurchID: churchID}); err != nil {
		telemetry.StatsJobsTotal.WithLabelValues("dropped").Inc()
		slog.Warn("stats recount dropped", "church_id", churchID.Hex(), "error", err)
		return
	}
	telemetry.StatsQueueDepth.Set(float64(p.queue.Len()))
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	slog.Info("stats processor started", "workers", p.workerCount)
}

// Stop closes the queue and waits for workers to drain it.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	slog.Info("stats processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) || errors.Is(err, context.Canceled) {
				slog.Debug("stats worker shutting down", "worker", id)
				return
			}
			continue
		}
		telemetry.StatsQueueDepth.Set(float64(p.queue.Len()))
		p.processJob(ctx, job)
	}
}

func (p *Processor) processJob(ctx context.Context, job StatsJob) {
	jobCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), JobTimeout)
	defer cancel()

	if err := p.recount(jobCtx, job.ChurchID); err != nil {
		slog.Error("stats recount failed",
			"church_id", job.ChurchID.Hex(),
			"attempt", job.RetryCount+1,
			"error", err,
		)
		p.handleFailure(job)
		return
	}

	telemetry.StatsJobsTotal.WithLabelValues("ok").Inc()
	slog.Debug("stats recounted", "church_id", job.ChurchID.Hex())
}

func (p *Processor) recount(ctx context.Context, churchID primitive.ObjectID) error {
	members, err := p.counters.Members(ctx, churchID)
	if err != nil {
		return fmt.Errorf("count members: %w", err)
	}
	events, err := p.counters.Events(ctx, churchID)
	if err != nil {
		return fmt.Errorf("count events: %w", err)
	}
	sermons, err := p.counters.Sermons(ctx, churchID)
	if err != nil {
		return fmt.Errorf("count sermons: %w", err)
	}

	return p.updater.UpdateStats(ctx, churchID, models.ChurchStats{
		Members:   members,
		Events:    events,
		Sermons:   sermons,
		UpdatedAt: time.Now(),
	})
}

func (p *Processor) handleFailure(job StatsJob) {
	job.RetryCount++

	if job.RetryCount >= MaxRetries {
		telemetry.StatsJobsTotal.WithLabelValues("failed").Inc()
		slog.Error("stats recount gave up", "church_id", job.ChurchID.Hex(), "attempts", job.RetryCount)
		return
	}

	telemetry.StatsJobsTotal.WithLabelValues("retry").Inc()
	delay := p.retryDelay * time.Duration(1<<uint(job.RetryCount-1))

	// Waits on shutdownCh rather than ctx so Stop abandons pending retries.
	go func() {
		select {
		case <-p.shutdownCh:
			slog.Warn("stats retry abandoned on shutdown", "church_id", job.ChurchID.Hex())
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				telemetry.StatsJobsTotal.WithLabelValues("dropped").Inc()
				slog.Warn("stats retry dropped", "church_id", job.ChurchID.Hex(), "error", err)
			}
		}
	}()
}
