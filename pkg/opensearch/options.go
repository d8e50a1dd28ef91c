package opensearch

import (
	"log/slog"

	"github.com/dmitrymomot/searchkit/pkg/resource"
)

// Option configures client bootstrap.
type Option func(*options)

type options struct {
	log         *slog.Logger
	loader      resource.Loader
	healthcheck bool
}

// WithLogger sets the logger for bootstrap diagnostics. Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithResourceLoader sets where CA certificates are read from.
// Defaults to the local filesystem.
func WithResourceLoader(l resource.Loader) Option {
	return func(o *options) { o.loader = l }
}

// WithHealthcheck makes New verify the cluster answers before returning.
func WithHealthcheck() Option {
	return func(o *options) { o.healthcheck = true }
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	if o.loader == nil {
		o.loader = resource.NewFileLoader("")
	}
	return o
}
