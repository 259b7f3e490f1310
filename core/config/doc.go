// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/simple555a/SignalsAndSlots/core/config"
//
//	type DispatcherConfig struct {
//		ThreadSafe    bool          `env:"SIGNAL_THREAD_SAFE_EMISSION" envDefault:"false"`
//		MaxAsync      int           `env:"SIGNAL_MAX_ASYNC" envDefault:"1024"`
//		StrandMaxWait time.Duration `env:"SIGNAL_STRAND_MAX_WAIT" envDefault:"1ms"`
//	}
//
//	func main() {
//		var cfg DispatcherConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 DispatcherConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 DispatcherConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type PoolConfig struct {
//		Workers int `env:"WORKERPOOL_WORKERS" envDefault:"8"`
//	}
//
//	type StrandConfig struct {
//		MaxWait time.Duration `env:"STRAND_MAX_WAIT,required"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&PoolConfig{})
//	config.MustLoad(&StrandConfig{})
package config
