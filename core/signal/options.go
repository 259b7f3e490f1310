package signal

import (
	"log/slog"
	"time"

	"github.com/simple555a/SignalsAndSlots/pkg/workerpool"
)

// Option is a functional option for configuring a signal.
type Option func(*options)

type options struct {
	threadSafe   bool
	maxAsync     int
	strandMin    time.Duration
	strandMax    time.Duration
	logger       *slog.Logger
	pool         *workerpool.Pool
	panicHandler PanicHandler
}

// WithThreadSafeEmission makes Emit hold a shared lock for the duration of
// the dispatch, so emissions from any goroutine are safe against concurrent
// Connect and Disconnect calls. Off by default: an emission-heavy caller
// that never mutates the registry concurrently skips the lock entirely.
func WithThreadSafeEmission() Option {
	return func(o *options) {
		o.threadSafe = true
	}
}

// WithMaxAsync caps how many asynchronous slot invocations may be in flight
// at once. Emitters block on the cap; it is the backpressure point for the
// Asynchronous scheme.
func WithMaxAsync(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAsync = n
		}
	}
}

// WithStrandWait sets the idle backoff floor and ceiling for strand workers.
// A worker whose backoff has reached the ceiling parks on a blocking dequeue
// instead of sleeping.
func WithStrandWait(min, max time.Duration) Option {
	return func(o *options) {
		if min > 0 {
			o.strandMin = min
		}
		if max > 0 {
			o.strandMax = max
		}
	}
}

// WithLogger sets the logger for connection lifecycle and slot failure events.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithPool sets the worker pool that runs Pooled slots. Defaults to the
// process-wide workerpool.Shared() instance.
func WithPool(pool *workerpool.Pool) Option {
	return func(o *options) {
		if pool != nil {
			o.pool = pool
		}
	}
}

// WithPanicHandler registers a callback invoked when a slot running under a
// non-synchronous scheme panics. The handler runs on the goroutine that
// recovered the panic, after it has been counted and logged.
func WithPanicHandler(h PanicHandler) Option {
	return func(o *options) {
		if h != nil {
			o.panicHandler = h
		}
	}
}
