package workerpool

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring a pool.
type Option func(*options)

type options struct {
	workers int
	minWait time.Duration
	maxWait time.Duration
	logger  *slog.Logger
}

// WithWorkers sets the number of worker goroutines the pool spawns on start.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithMinWait sets the initial idle backoff interval for pool workers.
func WithMinWait(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.minWait = d
		}
	}
}

// WithMaxWait sets the idle backoff ceiling. Once a worker's backoff
// reaches this value it parks on a blocking dequeue instead of sleeping.
func WithMaxWait(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.maxWait = d
		}
	}
}

// WithLogger sets the logger for pool lifecycle and task failure events.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
