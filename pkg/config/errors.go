package config

import "errors"

var (
	ErrParsingConfig     = errors.New("config: failed to parse environment")
	ErrInvalidConfigType = errors.New("config: target must be a struct")
	ErrNilPointer        = errors.New("config: nil target")

	// ErrLoadingEnvFile is returned when an explicitly named .env file cannot be read.
	ErrLoadingEnvFile = errors.New("config: failed to load env file")
)
