// Package signal provides an in-process typed dispatch engine: publishers
// emit a strongly-typed argument value and every connected callback (slot)
// receives it under the concurrency scheme it was registered with.
//
// A Signal[T] maintains four slot registries, one per scheme. Slot IDs come
// from a single counter, so an ID identifies a connection regardless of
// scheme, and connection order is recoverable from the IDs alone.
//
// # Choosing a scheme
//
//   - Synchronous: the slot runs inline on the emitting goroutine. Use for
//     cheap slots and low emission rates; the emitter pays the full cost.
//   - Asynchronous: each invocation gets its own goroutine, admitted through
//     a counting semaphore. Use for long-running slots invoked infrequently;
//     the semaphore keeps a hot emitter from spawning without bound.
//   - Strand: the slot owns a dedicated worker goroutine. Invocations never
//     overlap and arrive in emission order. Use when per-slot ordering
//     matters at high emission rates.
//   - Pooled: invocations run on a fixed worker pool shared across the
//     process. Use for short slots at high frequency where ordering does not
//     matter and per-invocation goroutines would be wasteful.
//
// # Usage
//
//	type OrderPlaced struct {
//		ID     string
//		Amount int64
//	}
//
//	sig := signal.New[OrderPlaced]()
//	defer sig.DisconnectAll()
//
//	id, err := sig.Connect(signal.Strand, func(o OrderPlaced) {
//		// runs on the slot's dedicated worker, in emission order
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := sig.Emit(context.Background(), OrderPlaced{ID: "ord-1", Amount: 950}); err != nil {
//		log.Printf("emit: %v", err)
//	}
//
//	sig.Disconnect(id)
//
// # Emission semantics
//
// Emit dispatches Synchronous, then Asynchronous, then Strand, then Pooled
// slots, ascending ID within each scheme. It returns once every synchronous
// slot has completed and all other invocations have been handed off; it
// never waits for asynchronous work to finish. Each non-synchronous
// invocation captures the emitted value at dispatch time.
//
// A panic in a synchronous slot propagates out of Emit. Panics under the
// other schemes are recovered per invocation, counted in Stats, logged, and
// passed to the optional PanicHandler; they never terminate a strand or
// pool worker.
//
// # Thread safety
//
// Connect, Disconnect, DisconnectAll, Connected, Stats, and Healthcheck are
// always safe for concurrent use. Emit is lock-free by default and must not
// race registry changes; construct the signal with WithThreadSafeEmission
// to let emissions overlap Connect/Disconnect, at the cost of a shared lock
// per emission.
//
// Disconnecting a Strand slot joins its worker. Calling Disconnect or
// DisconnectAll from inside a slot running on that same strand deadlocks.
//
// # Configuration
//
// Environment-based configuration through the Config struct:
//
//	SIGNAL_THREAD_SAFE_EMISSION - lock emissions against registry changes (default: false)
//	SIGNAL_MAX_ASYNC            - concurrent asynchronous invocation cap (default: 1024)
//	SIGNAL_STRAND_MIN_WAIT      - strand idle backoff floor (default: 1ns)
//	SIGNAL_STRAND_MAX_WAIT      - strand idle backoff ceiling (default: 1ms)
//
//	var cfg signal.Config
//	config.MustLoad(&cfg)
//	sig := signal.NewFromConfig[OrderPlaced](cfg, signal.WithLogger(logger))
package signal
