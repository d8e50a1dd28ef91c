// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and github.com/caarlos0/env/v11
// for struct tag parsing:
//
//	type Config struct {
//	    Host string `env:"OPENSEARCH_HOST" envDefault:"localhost"`
//	    Port int    `env:"OPENSEARCH_PORT" envDefault:"9200"`
//	}
//
//	if err := config.LoadEnv("deploy/.env"); err != nil {
//	    return err
//	}
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// WithPrefix lets the same struct describe several instances side by side:
// config.Load(&logs, config.WithPrefix("LOGS_")) reads LOGS_OPENSEARCH_HOST.
//
// Parsed values are cached per type and prefix for the lifetime of the process.
// ResetCache clears the cache, which tests use after changing the environment.
//
// Errors can be checked with errors.Is against ErrParsingConfig,
// ErrInvalidConfigType and ErrNilPointer.
package config
