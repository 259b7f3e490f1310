package signal

import "errors"

var (
	// ErrInvalidScheme is returned when connecting under an unknown dispatch scheme.
	ErrInvalidScheme = errors.New("invalid dispatch scheme")

	// ErrNilSlot is returned when connecting a nil slot.
	ErrNilSlot = errors.New("slot cannot be nil")

	// ErrHealthcheckFailed is returned when the signal health check fails.
	ErrHealthcheckFailed = errors.New("healthcheck failed")

	// ErrAsyncSaturated is returned when every asynchronous admission slot is claimed.
	ErrAsyncSaturated = errors.New("async capacity saturated")

	// ErrPoolNotRunning is returned when pooled slots exist but the worker pool is not running.
	ErrPoolNotRunning = errors.New("worker pool not running")
)
