// Package workerpool provides a fixed-size pool of worker goroutines that
// execute submitted tasks with per-worker FIFO ordering.
//
// Each worker owns a private queue and Submit routes tasks to workers
// round-robin, so tasks that land on the same worker run in submission order
// and no shared dequeue point serializes the workers against each other. Idle
// workers back off on an exponential curve from MinWait up to MaxWait, then
// park on a blocking dequeue until work arrives, so an idle pool costs no CPU.
//
// # Usage
//
//	pool := workerpool.New(
//		workerpool.WithWorkers(8),
//		workerpool.WithLogger(logger),
//	)
//
//	if err := pool.Start(); err != nil {
//		log.Fatal(err)
//	}
//
//	err := pool.Submit(func() {
//		// runs on one of the pool workers
//	})
//
//	// Graceful shutdown, bounded by the context deadline.
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//	if err := pool.Stop(ctx); err != nil {
//		log.Printf("pool shutdown: %v", err)
//	}
//
// # Shared pool
//
// Shared returns a lazily constructed process-wide pool. Start is idempotent,
// so independent components can all call Shared().Start() and the workers are
// spawned exactly once for the whole process:
//
//	pool := workerpool.Shared()
//	_ = pool.Start()
//	_ = pool.Submit(task)
//
// The shared pool is never stopped; it lives until the process exits.
//
// # Configuration
//
// Environment-based configuration through the Config struct:
//
//	WORKERPOOL_WORKERS  - worker goroutine count (default: 8)
//	WORKERPOOL_MIN_WAIT - initial idle backoff interval (default: 1ns)
//	WORKERPOOL_MAX_WAIT - idle backoff ceiling (default: 1ms)
//
//	cfg := workerpool.Config{Workers: 4}
//	pool := workerpool.NewFromConfig(cfg, workerpool.WithLogger(logger))
//
// # Error handling
//
// Submit rejects nil tasks with ErrNilTask, reports ErrNotRunning before
// Start, and ErrStopped after Stop. Panics inside tasks are recovered, logged,
// and counted in Stats; they never terminate a worker. Note that MaxWait
// bounds how long a sleeping worker can take to notice a stop marker, so keep
// it small relative to shutdown deadlines.
package workerpool
