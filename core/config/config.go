package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> parsed config value
)

// Load parses environment variables into cfg. The first call for a given type
// reads the environment; subsequent calls for the same type copy the cached
// value, so every consumer of a config type observes identical settings.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	// A missing .env file is not an error; the environment simply wins.
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(cfg).Elem()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParseFailed, err)
	}

	// First writer wins so concurrent loaders of one type agree on the value.
	actual, _ := cache.LoadOrStore(typ, *cfg)
	*cfg = actual.(T)

	return nil
}

// MustLoad is like Load but panics on failure.
// Intended for application startup where a bad environment is fatal.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
