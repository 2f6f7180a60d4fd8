package worker

import (
	"context"
	"runtime"
	"strconv"

	"github.com/courtside/fastbreak/internal/domain/telemetry"
	"github.com/courtside/fastbreak/pkg/logger"
	"github.com/courtside/fastbreak/pkg/metrics"
)

// Pool manages a fixed set of simulation workers draining one queue.
type Pool struct {
	workers []*SimWorker
	logger  logger.Logger
}

// NewPool creates workerCount workers. A seed of 0 leaves workers on
// clock-derived randomness; otherwise each worker gets seed+index so runs
// are reproducible but workers stay decorrelated.
func NewPool(workerCount int, seed int64, queue Queue, outcomes Outcomes, box BoxScore) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU()
	}

	p := &Pool{
		workers: make([]*SimWorker, workerCount),
		logger:  logger.Get().Named("worker-pool"),
	}
	for i := 0; i < workerCount; i++ {
		opts := []Option{WithName("worker-" + strconv.Itoa(i))}
		if seed != 0 {
			opts = append(opts, WithSeed(seed+int64(i)))
		}
		p.workers[i] = NewSimWorker(queue, outcomes, box, opts...)
	}

	metrics.UpdateWorkerCount(workerCount)
	return p
}

// Start launches all workers.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Wait blocks until every worker's Run loop has returned.
func (p *Pool) Wait() {
	for _, w := range p.workers {
		<-w.Done()
	}
}

// MergeLogs concatenates all worker logs, in worker-index order, into a
// fresh session log. Only valid after Wait has returned.
func (p *Pool) MergeLogs() *telemetry.Log {
	session := telemetry.NewLog()
	for _, w := range p.workers {
		session.Merge(w.Log())
	}
	return session
}
