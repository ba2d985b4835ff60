// Package dispatch runs detached background jobs on a bounded worker pool.
// Submission fan-out must never block or fail the request path, so jobs are
// enqueued without waiting and their outcomes surface only in logs and
// metrics. Shutdown drains the queue so in-flight fan-outs are not dropped.
package dispatch

import (
	"context"
	"sync"
	"time"

	"github.com/leadflowhq/vip-signup-api/pkg/logging"
)

type job struct {
	name string
	run  func(ctx context.Context)
}

// Dispatcher owns a buffered job queue and a fixed set of workers.
type Dispatcher struct {
	jobs       chan job
	jobTimeout time.Duration
	logger     *logging.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// New creates a dispatcher with the given worker count, queue capacity and
// per-job timeout, and starts its workers.
func New(workers, queueSize int, jobTimeout time.Duration, logger *logging.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 4
	}
	if queueSize <= 0 {
		queueSize = 256
	}
	if jobTimeout <= 0 {
		jobTimeout = 15 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}

	d := &Dispatcher{
		jobs:       make(chan job, queueSize),
		jobTimeout: jobTimeout,
		logger:     logger,
	}

	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go d.worker()
	}
	return d
}

// Enqueue schedules fn to run on a worker. It never blocks: when the queue
// is full or the dispatcher is shut down the job is dropped and logged.
func (d *Dispatcher) Enqueue(name string, fn func(ctx context.Context)) bool {
	if fn == nil {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		d.logger.Warn("dispatch: job rejected after shutdown", "job", name)
		return false
	}

	select {
	case d.jobs <- job{name: name, run: fn}:
		return true
	default:
		d.logger.Error("dispatch: queue full, dropping job", "job", name)
		return false
	}
}

// Shutdown stops accepting jobs and waits for queued work to drain, or for
// ctx to expire.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.jobs)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for j := range d.jobs {
		d.execute(j)
	}
}

func (d *Dispatcher) execute(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), d.jobTimeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("dispatch: job panicked", "job", j.name, "panic", r)
		}
	}()

	j.run(ctx)
	d.logger.Debug("dispatch: job finished", "job", j.name, "duration_ms", time.Since(start).Milliseconds())
}
