package workerpool

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/simple555a/SignalsAndSlots/pkg/mpsc"
)

const (
	// DefaultWorkerCount is the number of workers a pool spawns unless configured otherwise.
	DefaultWorkerCount = 8

	// DefaultMinWait is the initial idle backoff interval for pool workers.
	DefaultMinWait = time.Nanosecond

	// DefaultMaxWait is the idle backoff ceiling. A worker whose backoff has
	// reached this value parks on a blocking dequeue instead of sleeping.
	DefaultMaxWait = time.Millisecond
)

// message is a unit of work routed to a single worker queue. A stop message
// instructs the receiving worker to exit after draining everything ahead of it.
type message struct {
	run  func()
	stop bool
}

// Pool executes submitted tasks on a fixed set of worker goroutines.
// Each worker owns one queue and Submit distributes tasks round-robin,
// so tasks landing on the same worker run in submission order.
type Pool struct {
	poolID uuid.UUID
	queues []*mpsc.Queue[message]
	next   atomic.Uint64
	wg     sync.WaitGroup
	mu     sync.Mutex

	// Configuration
	minWait time.Duration
	maxWait time.Duration
	logger  *slog.Logger

	// State management
	running atomic.Bool
	stopped atomic.Bool

	// Observability metrics
	starts    atomic.Int64
	submitted atomic.Int64
	executed  atomic.Int64
	panicked  atomic.Int64
	dropped   atomic.Int64
}

// Stats provides observability metrics for monitoring and debugging
type Stats struct {
	Workers   int   // Number of worker goroutines the pool spawns on start
	Starts    int64 // Number of times the pool transitioned from idle to running
	Submitted int64 // Total number of tasks accepted by Submit
	Executed  int64 // Total number of tasks that ran to completion
	Panicked  int64 // Total number of tasks that panicked
	Dropped   int64 // Total number of submissions rejected after Stop
	Pending   int   // Number of queued tasks not yet picked up by a worker
	IsRunning bool  // Whether the pool workers are currently running
}

// New creates a worker pool. Workers are not spawned until Start is called.
func New(opts ...Option) *Pool {
	options := &options{
		workers: DefaultWorkerCount,
		minWait: DefaultMinWait,
		maxWait: DefaultMaxWait,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}

	// Apply options
	for _, opt := range opts {
		opt(options)
	}

	if options.maxWait < options.minWait {
		options.maxWait = options.minWait
	}

	queues := make([]*mpsc.Queue[message], options.workers)
	for i := range queues {
		queues[i] = mpsc.New[message]()
	}

	return &Pool{
		poolID:  uuid.New(),
		queues:  queues,
		minWait: options.minWait,
		maxWait: options.maxWait,
		logger:  options.logger,
	}
}

// Start spawns the worker goroutines. It is idempotent: the first call brings
// the pool up and later calls return nil without side effects, which makes it
// safe for every dispatcher sharing the pool to call on demand. A stopped pool
// cannot be restarted.
func (p *Pool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped.Load() {
		return ErrStopped
	}
	if p.running.Load() {
		return nil
	}

	for i := range p.queues {
		p.wg.Add(1)
		go p.worker(i)
	}

	p.running.Store(true)
	p.starts.Add(1)

	p.logger.Info("worker pool started",
		slog.String("pool_id", p.poolID.String()),
		slog.Int("workers", len(p.queues)),
		slog.Duration("max_wait", p.maxWait))

	return nil
}

// Submit enqueues a task for execution on one of the pool workers. Tasks are
// distributed round-robin across worker queues; two tasks routed to the same
// worker execute in submission order.
func (p *Pool) Submit(task func()) error {
	if task == nil {
		return ErrNilTask
	}
	if p.stopped.Load() {
		p.dropped.Add(1)
		return ErrStopped
	}
	if !p.running.Load() {
		return ErrNotRunning
	}

	idx := (p.next.Add(1) - 1) % uint64(len(p.queues))
	p.queues[idx].Enqueue(message{run: task})
	p.submitted.Add(1)

	return nil
}

// Stop shuts the pool down, letting each worker drain the tasks queued ahead
// of the stop marker before exiting. Tasks submitted concurrently with Stop
// may be left behind unexecuted. The context bounds how long Stop waits for
// the workers to finish.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if p.stopped.Load() {
		p.mu.Unlock()
		return ErrStopped
	}
	if !p.running.Load() {
		p.mu.Unlock()
		return ErrNotRunning
	}

	// Reject new submissions before enqueueing stop markers so every worker
	// queue ends with its marker.
	p.stopped.Store(true)
	p.running.Store(false)

	for _, q := range p.queues {
		q.Enqueue(message{stop: true})
	}
	p.mu.Unlock()

	p.logger.Info("worker pool stopping, waiting for queued tasks to drain",
		slog.String("pool_id", p.poolID.String()))

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("worker pool stopped cleanly",
			slog.String("pool_id", p.poolID.String()))
		return nil
	case <-ctx.Done():
		p.logger.Warn("worker pool shutdown timed out, workers may still be draining",
			slog.String("pool_id", p.poolID.String()))
		return errors.Join(ErrShutdownTimeout, ctx.Err())
	}
}

// worker drains its own queue until it sees a stop marker. An idle worker
// sleeps on an exponential curve from minWait up to maxWait, then parks on a
// blocking dequeue so long-idle workers stop burning CPU.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	q := p.queues[id]
	idle := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(p.minWait),
		backoff.WithRandomizationFactor(0),
		backoff.WithMultiplier(2),
		backoff.WithMaxInterval(p.maxWait),
		backoff.WithMaxElapsedTime(0),
	)

	for {
		msg, ok := q.Dequeue()
		if !ok {
			wait := idle.NextBackOff()
			if wait < p.maxWait {
				time.Sleep(wait)
				continue
			}
			msg = q.BlockingDequeue()
		}

		if msg.stop {
			p.logger.Debug("pool worker exiting",
				slog.String("pool_id", p.poolID.String()),
				slog.Int("worker", id))
			return
		}

		p.execute(id, msg.run)
		idle.Reset()
	}
}

// execute runs a single task, containing panics so a bad task cannot take
// down the worker goroutine.
func (p *Pool) execute(worker int, task func()) {
	defer func() {
		if r := recover(); r != nil {
			p.panicked.Add(1)
			p.logger.Error("pool task panicked",
				slog.String("pool_id", p.poolID.String()),
				slog.Int("worker", worker),
				slog.Any("panic", r))
		}
	}()

	task()
	p.executed.Add(1)
}

// Running reports whether the pool workers are currently running.
func (p *Pool) Running() bool {
	return p.running.Load()
}

// Workers returns the number of worker goroutines the pool spawns on start.
func (p *Pool) Workers() int {
	return len(p.queues)
}

// MinWait returns the initial idle backoff interval.
func (p *Pool) MinWait() time.Duration {
	return p.minWait
}

// MaxWait returns the idle backoff ceiling.
func (p *Pool) MaxWait() time.Duration {
	return p.maxWait
}

// Stats returns current pool statistics for observability and monitoring.
// This method is thread-safe and can be called at any time.
//
// Use cases:
//   - Prometheus/Grafana metrics
//   - Health checks
//   - Testing (verify task execution without sleep)
func (p *Pool) Stats() Stats {
	pending := 0
	for _, q := range p.queues {
		pending += q.Len()
	}

	return Stats{
		Workers:   len(p.queues),
		Starts:    p.starts.Load(),
		Submitted: p.submitted.Load(),
		Executed:  p.executed.Load(),
		Panicked:  p.panicked.Load(),
		Dropped:   p.dropped.Load(),
		Pending:   pending,
		IsRunning: p.running.Load(),
	}
}

// Healthcheck validates that the pool is operational.
// Returns nil if healthy, or an error describing the health issue.
// This method is thread-safe and suitable for use in health check endpoints.
//
// The returned error can be checked using errors.Is:
//
//	if errors.Is(err, workerpool.ErrNotRunning) { ... }
func (p *Pool) Healthcheck(ctx context.Context) error {
	if !p.running.Load() {
		return errors.Join(ErrHealthcheckFailed, ErrNotRunning)
	}
	return nil
}
