// Package service runs simulation sessions: it wires the possession queue,
// the worker pool, the outcome model and the box-score store, and keeps the
// results of the most recent session for reporting.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	possessionqueue "github.com/courtside/fastbreak/internal/adapters/mq/queue"
	workerpool "github.com/courtside/fastbreak/internal/adapters/mq/worker"
	repository "github.com/courtside/fastbreak/internal/adapters/repository"
	"github.com/courtside/fastbreak/internal/domain/scoring"
	"github.com/courtside/fastbreak/internal/domain/telemetry"
	"github.com/courtside/fastbreak/internal/sim"
	"github.com/courtside/fastbreak/pkg/logger"
)

const enqueueRetryDelay = time.Millisecond

// Service owns session lifecycle and the latest results.
type Service struct {
	mu sync.RWMutex

	// Wiring
	model       *scoring.Model
	workerCount int
	queueSize   int
	shardCount  int
	seed        int64

	// Latest session results
	log *telemetry.Log
	box repository.Store

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithModel sets the outcome model used for all sessions.
func WithModel(m *scoring.Model) Option {
	return func(s *Service) {
		if m != nil {
			s.model = m
		}
	}
}

// WithWorkerCount sets the number of simulation workers per session.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the possession queue capacity.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithShardCount sets the box-score store shard count.
func WithShardCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.shardCount = count
		}
	}
}

// WithSeed makes sessions reproducible. Zero seeds from the clock per run.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		s.seed = seed
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		model:       scoring.New(),
		workerCount: runtime.NumCPU(),
		queueSize:   10_000,
		shardCount:  8,
		logger:      logger.Get().Named("service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunSession simulates n possessions and replaces the stored results.
// Worker telemetry logs are merged, in worker order, only after every worker
// has stopped; the merged log and box score are then published atomically.
func (s *Service) RunSession(ctx context.Context, n int) (telemetry.Summary, error) {
	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := sim.NewGenerator(seed)
	queue := possessionqueue.NewInMemoryQueue(possessionqueue.WithCapacity(s.queueSize))
	box := repository.NewBoxScoreStore(repository.WithShardCount(s.shardCount))
	pool := workerpool.NewPool(s.workerCount, seed, queue, s.model, box)

	s.logger.Info(ctx, "starting session",
		logger.Int("possessions", n),
		logger.Int("workers", s.workerCount),
		logger.Int64("seed", seed),
	)

	pool.Start(ctx)

	for i := 0; i < n; i++ {
		p := gen.Possession()
		for !queue.Enqueue(ctx, p) {
			select {
			case <-ctx.Done():
				_ = queue.Close()
				pool.Wait()
				return telemetry.Summary{}, fmt.Errorf("session aborted: %w", ctx.Err())
			case <-time.After(enqueueRetryDelay):
				// queue full, workers are draining
			}
		}
	}

	if err := queue.Close(); err != nil {
		return telemetry.Summary{}, fmt.Errorf("closing possession queue: %w", err)
	}
	pool.Wait()

	log := pool.MergeLogs()
	summary := log.Summary()

	s.mu.Lock()
	s.log = log
	s.box = box
	s.mu.Unlock()

	s.logger.Info(ctx, "session complete",
		logger.Int("events", log.Len()),
		logger.Int("shots", summary.Shots),
		logger.Int("makes", summary.Makes),
		logger.Float64("p_avg", summary.PAvg),
	)
	return summary, nil
}

// Summary returns the latest session's telemetry summary.
func (s *Service) Summary() telemetry.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.log == nil {
		return telemetry.Summary{}
	}
	return s.log.Summary()
}

// Events returns the latest session's event sequence, read-only.
func (s *Service) Events() []telemetry.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.log == nil {
		return nil
	}
	return s.log.Events()
}

// TopN returns the latest session's box-score leaders.
func (s *Service) TopN(ctx context.Context, n int) ([]repository.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.box == nil {
		return nil, nil
	}
	return s.box.TopN(ctx, n)
}

// Player returns one player's line from the latest session.
func (s *Service) Player(ctx context.Context, name string) (repository.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.box == nil {
		return repository.Entry{}, repository.ErrNotFound
	}
	return s.box.Player(ctx, name)
}
