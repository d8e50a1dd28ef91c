package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type cache struct {
	mu     sync.Mutex
	values map[string]any
}

var (
	globalCache = &cache{values: make(map[string]any)}

	defaultEnvLoaded sync.Once
)

// Option adjusts how a single Load call reads the environment.
type Option func(*options)

type options struct {
	prefix string
}

// WithPrefix prepends prefix to every env tag of the target struct.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// LoadEnv reads the given .env files into the process environment. Variables
// that are already set are left untouched, and earlier files win over later
// ones. Without arguments the .env file of the working directory is loaded.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// Load parses the environment into v. The optional .env file of the working
// directory is read once per process before the first parse. Results are
// cached by type and prefix, so later calls for the same pair return the
// first parsed value.
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// Missing .env is fine
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}
	if reflect.TypeFor[T]().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s is not a struct", ErrInvalidConfigType, reflect.TypeFor[T]())
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	key := reflect.TypeFor[T]().String() + "|" + o.prefix

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	globalCache.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ResetCache drops every cached configuration.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.mu.Unlock()
}
