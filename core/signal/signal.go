package signal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/simple555a/SignalsAndSlots/pkg/semaphore"
	"github.com/simple555a/SignalsAndSlots/pkg/workerpool"
)

const (
	// DefaultMaxAsync is the default cap on concurrently running
	// asynchronous slot invocations.
	DefaultMaxAsync = 1024

	// DefaultStrandMinWait is the initial idle backoff interval for strand workers.
	DefaultStrandMinWait = time.Nanosecond

	// DefaultStrandMaxWait is the idle backoff ceiling for strand workers,
	// aligned with the worker pool's ceiling.
	DefaultStrandMaxWait = workerpool.DefaultMaxWait
)

// Slot is a callback connected to a signal. Slots return nothing; a slot
// that fails does so by panicking.
type Slot[T any] func(T)

// SlotID identifies one connection. IDs are unique across all schemes of a
// signal for its whole lifetime and strictly increase in connection order,
// starting at 0. Disconnected IDs are never reused.
type SlotID uint32

// PanicHandler receives panics recovered from slots running under
// non-synchronous schemes. scheme and id identify the connection, v is the
// recovered value, and stack is the goroutine stack captured at recovery.
type PanicHandler func(scheme Scheme, id SlotID, v any, stack []byte)

// slotEntry pairs a connected slot with its ID inside a scheme registry.
// Strand entries additionally own their dedicated worker.
type slotEntry[T any] struct {
	id SlotID
	fn Slot[T]
	st *strand
}

// Signal dispatches typed argument values to connected slots under four
// concurrency schemes. The zero value is not usable; construct with New or
// NewFromConfig.
type Signal[T any] struct {
	signalID uuid.UUID

	mu         sync.RWMutex
	registries [schemeCount][]slotEntry[T]
	nextID     atomic.Uint32

	// Configuration
	threadSafe bool
	strandMin  time.Duration
	strandMax  time.Duration
	sem        *semaphore.Semaphore
	pool       *workerpool.Pool
	logger     *slog.Logger
	onPanic    PanicHandler

	// Observability metrics
	activeStrands atomic.Int32
	emissions     atomic.Int64
	delivered     atomic.Int64
	panics        atomic.Int64
}

// Stats provides observability metrics for monitoring and debugging
type Stats struct {
	Synchronous   int   // Connected synchronous slots
	Asynchronous  int   // Connected asynchronous slots
	Strands       int   // Connected strand slots
	Pooled        int   // Connected pooled slots
	ActiveStrands int32 // Strand worker goroutines currently alive
	AsyncInFlight int   // Asynchronous invocations currently admitted
	AsyncCapacity int   // Admission cap for asynchronous invocations
	Emissions     int64 // Total number of Emit calls that dispatched
	Delivered     int64 // Total number of slot invocations that completed
	Panics        int64 // Total number of recovered slot panics
}

// New creates a signal for argument type T. By default emission is not
// locked against concurrent registry changes, up to DefaultMaxAsync
// asynchronous invocations are admitted at once, and Pooled slots run on
// the process-wide shared pool.
//
// Example:
//
//	sig := signal.New[UserRegistered](
//	    signal.WithThreadSafeEmission(),
//	    signal.WithLogger(logger),
//	)
func New[T any](opts ...Option) *Signal[T] {
	options := &options{
		maxAsync:  DefaultMaxAsync,
		strandMin: DefaultStrandMinWait,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}

	// Apply options
	for _, opt := range opts {
		opt(options)
	}

	if options.pool == nil {
		options.pool = workerpool.Shared()
	}
	if options.strandMax == 0 {
		// Strand workers follow the pool's idle ceiling unless overridden.
		options.strandMax = options.pool.MaxWait()
	}
	if options.strandMax < options.strandMin {
		options.strandMax = options.strandMin
	}

	return &Signal[T]{
		signalID:   uuid.New(),
		threadSafe: options.threadSafe,
		strandMin:  options.strandMin,
		strandMax:  options.strandMax,
		sem:        semaphore.New(options.maxAsync),
		pool:       options.pool,
		logger:     options.logger,
		onPanic:    options.panicHandler,
	}
}

// Connect registers fn under the given scheme and returns its ID. The same
// function connected twice holds two independent registrations. Connecting
// the first Pooled slot brings the worker pool up; a pool that has been
// stopped rejects the connection.
func (s *Signal[T]) Connect(scheme Scheme, fn Slot[T]) (SlotID, error) {
	if !scheme.valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidScheme, scheme)
	}
	if fn == nil {
		return 0, ErrNilSlot
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if scheme == Pooled {
		// Lazy pool start-up; idempotent, so only the first pooled
		// connection process-wide spawns the workers.
		if err := s.pool.Start(); err != nil {
			return 0, fmt.Errorf("start worker pool: %w", err)
		}
	}

	id := SlotID(s.nextID.Add(1) - 1)
	entry := slotEntry[T]{id: id, fn: fn}

	if scheme == Strand {
		s.activeStrands.Add(1)
		entry.st = newStrand(s.strandMin, s.strandMax, func() {
			s.activeStrands.Add(-1)
		})
	}

	s.registries[scheme] = append(s.registries[scheme], entry)

	s.logger.Debug("slot connected",
		slog.String("signal_id", s.signalID.String()),
		slog.String("scheme", scheme.String()),
		slog.Uint64("slot_id", uint64(id)))

	return id, nil
}

// Disconnect removes the slot with the given ID; unknown IDs are a no-op.
// Disconnecting a Strand slot lets the invocations already queued on it run,
// then waits for its worker to exit before returning. It must therefore not
// be called from inside a slot running on that same strand.
func (s *Signal[T]) Disconnect(id SlotID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for scheme := range s.registries {
		reg := s.registries[scheme]
		for i, entry := range reg {
			if entry.id != id {
				continue
			}

			if entry.st != nil {
				entry.st.join()
			}

			s.registries[scheme] = append(reg[:i], reg[i+1:]...)

			s.logger.Debug("slot disconnected",
				slog.String("signal_id", s.signalID.String()),
				slog.String("scheme", Scheme(scheme).String()),
				slog.Uint64("slot_id", uint64(id)))
			return
		}
	}
}

// DisconnectAll removes every slot. All strand workers receive their stop
// message before the first one is waited on, so they wind down in parallel
// after draining what was already queued. Safe to call with nothing
// connected; suited for teardown via defer.
func (s *Signal[T]) DisconnectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	strands := s.registries[Strand]
	for _, entry := range strands {
		entry.st.stop()
	}
	for _, entry := range strands {
		entry.st.wait()
	}

	removed := 0
	for scheme := range s.registries {
		removed += len(s.registries[scheme])
		s.registries[scheme] = nil
	}

	if removed > 0 {
		s.logger.Debug("all slots disconnected",
			slog.String("signal_id", s.signalID.String()),
			slog.Int("slots", removed))
	}
}

// Emit dispatches args to every connected slot. Synchronous slots run
// inline, in connection order, before Emit returns; a panic in one
// propagates to the caller. Asynchronous, Strand, and Pooled slots are then
// handed off in that scheme order, ascending ID within each scheme.
//
// The context gates dispatch: a context that is already cancelled aborts
// before any slot runs, and an emitter blocked on the asynchronous
// admission cap aborts with the context error, leaving the remaining slots
// of that emission undelivered.
//
// Emitting with no slots connected is a no-op. Without
// WithThreadSafeEmission the caller must not emit concurrently with
// Connect, Disconnect, or DisconnectAll.
func (s *Signal[T]) Emit(ctx context.Context, args T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.threadSafe {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}

	s.emissions.Add(1)

	for _, entry := range s.registries[Synchronous] {
		entry.fn(args)
		s.delivered.Add(1)
	}

	for _, entry := range s.registries[Asynchronous] {
		// Admission is the backpressure point: the emitter blocks here once
		// maxAsync invocations are in flight.
		if err := s.sem.AcquireContext(ctx); err != nil {
			return fmt.Errorf("async admission: %w", err)
		}

		go func(entry slotEntry[T]) {
			defer s.sem.Release()
			s.invoke(Asynchronous, entry.id, entry.fn, args)
		}(entry)
	}

	for _, entry := range s.registries[Strand] {
		entry := entry
		entry.st.queue.Enqueue(strandMsg{run: func() {
			s.invoke(Strand, entry.id, entry.fn, args)
		}})
	}

	for _, entry := range s.registries[Pooled] {
		entry := entry
		if err := s.pool.Submit(func() {
			s.invoke(Pooled, entry.id, entry.fn, args)
		}); err != nil {
			return fmt.Errorf("submit pooled slot %d: %w", entry.id, err)
		}
	}

	return nil
}

// invoke runs one slot under a non-synchronous scheme, containing panics so
// a failing slot cannot take down its strand worker or pool worker.
func (s *Signal[T]) invoke(scheme Scheme, id SlotID, fn Slot[T], args T) {
	defer func() {
		if r := recover(); r != nil {
			s.panics.Add(1)
			stack := debug.Stack()
			s.logger.Error("slot panicked",
				slog.String("signal_id", s.signalID.String()),
				slog.String("scheme", scheme.String()),
				slog.Uint64("slot_id", uint64(id)),
				slog.Any("panic", r))

			if s.onPanic != nil {
				// The handler gets the same containment as the slot.
				defer func() { _ = recover() }()
				s.onPanic(scheme, id, r, stack)
			}
		}
	}()

	fn(args)
	s.delivered.Add(1)
}

// Connected returns the number of slots currently connected across all schemes.
func (s *Signal[T]) Connected() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for scheme := range s.registries {
		total += len(s.registries[scheme])
	}
	return total
}

// Stats returns current dispatch statistics for observability and monitoring.
// This method is thread-safe and can be called at any time.
//
// Use cases:
//   - Prometheus/Grafana metrics
//   - Health checks
//   - Testing (verify deliveries without sleep)
func (s *Signal[T]) Stats() Stats {
	s.mu.RLock()
	var counts [schemeCount]int
	for scheme := range s.registries {
		counts[scheme] = len(s.registries[scheme])
	}
	s.mu.RUnlock()

	return Stats{
		Synchronous:   counts[Synchronous],
		Asynchronous:  counts[Asynchronous],
		Strands:       counts[Strand],
		Pooled:        counts[Pooled],
		ActiveStrands: s.activeStrands.Load(),
		AsyncInFlight: s.sem.InFlight(),
		AsyncCapacity: s.sem.Capacity(),
		Emissions:     s.emissions.Load(),
		Delivered:     s.delivered.Load(),
		Panics:        s.panics.Load(),
	}
}

// Healthcheck validates that the signal can currently dispatch.
// Returns nil if healthy, or an error describing the health issue.
// This method is thread-safe and suitable for use in health check endpoints.
//
// The returned error can be checked using errors.Is:
//
//	if errors.Is(err, signal.ErrAsyncSaturated) { ... }
//	if errors.Is(err, signal.ErrPoolNotRunning) { ... }
func (s *Signal[T]) Healthcheck(ctx context.Context) error {
	inFlight := s.sem.InFlight()
	if capacity := s.sem.Capacity(); inFlight >= capacity {
		return errors.Join(ErrHealthcheckFailed, ErrAsyncSaturated,
			fmt.Errorf("%d/%d async invocations in flight", inFlight, capacity))
	}

	s.mu.RLock()
	pooled := len(s.registries[Pooled])
	s.mu.RUnlock()

	if pooled > 0 && !s.pool.Running() {
		return errors.Join(ErrHealthcheckFailed, ErrPoolNotRunning)
	}

	return nil
}
