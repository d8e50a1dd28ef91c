package probe

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/searchkit/pkg/clientip"
	"github.com/dmitrymomot/searchkit/pkg/logger"
	"github.com/dmitrymomot/searchkit/pkg/requestid"
)

// Check is a named readiness dependency.
type Check struct {
	Name string
	Func func(context.Context) error
}

// DefaultCheckTimeout bounds each readiness check.
const DefaultCheckTimeout = 2 * time.Second

// RouterOption configures Router.
type RouterOption func(*routerConfig)

type routerConfig struct {
	timeout time.Duration
}

// WithCheckTimeout overrides DefaultCheckTimeout.
func WithCheckTimeout(d time.Duration) RouterOption {
	return func(c *routerConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// Router returns the probe endpoints.
func Router(log *slog.Logger, checks []Check, opts ...RouterOption) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	cfg := &routerConfig{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware)
	r.Get("/livez", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	})
	r.Get("/readyz", readyHandler(log, checks, cfg.timeout))
	return r
}

func readyHandler(log *slog.Logger, checks []Check, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, c := range checks {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			start := time.Now()
			err := c.Func(ctx)
			cancel()

			if err != nil {
				log.ErrorContext(r.Context(), "Readiness check failed",
					slog.String("check", c.Name),
					logger.Duration(time.Since(start)),
					logger.Error(err),
				)
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
