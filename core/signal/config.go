package signal

import "time"

// Config holds the configuration for a signal dispatch engine.
// Designed for environment-based configuration using popular env parsing libraries.
type Config struct {
	ThreadSafeEmission bool          `env:"SIGNAL_THREAD_SAFE_EMISSION" envDefault:"false"`
	MaxAsync           int           `env:"SIGNAL_MAX_ASYNC" envDefault:"1024"`
	StrandMinWait      time.Duration `env:"SIGNAL_STRAND_MIN_WAIT" envDefault:"1ns"`
	StrandMaxWait      time.Duration `env:"SIGNAL_STRAND_MAX_WAIT" envDefault:"1ms"`
}

// DefaultConfig returns sensible defaults for production use.
func DefaultConfig() Config {
	return Config{
		MaxAsync:      DefaultMaxAsync,
		StrandMinWait: DefaultStrandMinWait,
		StrandMaxWait: DefaultStrandMaxWait,
	}
}

// NewFromConfig creates a Signal from configuration.
// Additional options can override config values.
func NewFromConfig[T any](cfg Config, opts ...Option) *Signal[T] {
	// Combine config options with user-provided options (user options override)
	// Option functions handle zero/empty values appropriately
	allOpts := []Option{
		WithMaxAsync(cfg.MaxAsync),
		WithStrandWait(cfg.StrandMinWait, cfg.StrandMaxWait),
	}
	if cfg.ThreadSafeEmission {
		allOpts = append(allOpts, WithThreadSafeEmission())
	}
	allOpts = append(allOpts, opts...)

	return New[T](allOpts...)
}
