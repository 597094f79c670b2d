package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type entry struct {
	once sync.Once
	val  any
	err  error
}

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> *entry
)

// Load parses T from the environment, returning the cached value for T on
// subsequent calls.
func Load[T any]() (T, error) {
	dotenvOnce.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	v, _ := cache.LoadOrStore(key, &entry{})
	e := v.(*entry)

	e.once.Do(func() {
		cfg, err := env.ParseAs[T]()
		if err != nil {
			e.err = fmt.Errorf("%w: %s: %w", ErrParsingConfig, key, err)
			return
		}
		e.val = cfg
	})

	if e.err != nil {
		cache.CompareAndDelete(key, e)
		var zero T
		return zero, e.err
	}
	return e.val.(T), nil
}

// MustLoad is like Load but panics on error. Use it for configuration the
// process cannot start without.
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return cfg
}
