package workerpool

import "errors"

var (
	// ErrNilTask is returned when a nil task is submitted to the pool.
	ErrNilTask = errors.New("task cannot be nil")

	// ErrNotRunning is returned when submitting to a pool that has not been started.
	ErrNotRunning = errors.New("pool not running")

	// ErrStopped is returned when starting or submitting to a pool that has been stopped.
	ErrStopped = errors.New("pool stopped")

	// ErrShutdownTimeout is returned when workers do not drain within the stop deadline.
	ErrShutdownTimeout = errors.New("shutdown timeout exceeded")

	// ErrHealthcheckFailed is returned when the pool health check fails.
	ErrHealthcheckFailed = errors.New("healthcheck failed")
)
