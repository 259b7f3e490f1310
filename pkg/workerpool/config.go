package workerpool

import "time"

// Config holds the configuration for a worker pool.
// Designed for environment-based configuration using popular env parsing libraries.
type Config struct {
	Workers int           `env:"WORKERPOOL_WORKERS" envDefault:"8"`
	MinWait time.Duration `env:"WORKERPOOL_MIN_WAIT" envDefault:"1ns"`
	MaxWait time.Duration `env:"WORKERPOOL_MAX_WAIT" envDefault:"1ms"`
}

// DefaultConfig returns sensible defaults for production use.
func DefaultConfig() Config {
	return Config{
		Workers: DefaultWorkerCount,
		MinWait: DefaultMinWait,
		MaxWait: DefaultMaxWait,
	}
}

// NewFromConfig creates a Pool from configuration.
// Additional options can override config values.
func NewFromConfig(cfg Config, opts ...Option) *Pool {
	// Combine config options with user-provided options (user options override)
	// Option functions handle zero/empty values appropriately
	allOpts := append([]Option{
		WithWorkers(cfg.Workers),
		WithMinWait(cfg.MinWait),
		WithMaxWait(cfg.MaxWait),
	}, opts...)

	return New(allOpts...)
}
