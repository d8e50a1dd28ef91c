package opensearch

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"

	"github.com/opensearch-project/opensearch-go/v2"

	"github.com/dmitrymomot/searchkit/pkg/logger"
)

// NewTransportConfig validates cfg and assembles the transport configuration:
// address, default credential and, for https, the TLS trust context.
// Errors wrap ErrClientBootstrap.
func NewTransportConfig(ctx context.Context, cfg Config, opts ...Option) (opensearch.Config, error) {
	return newOptions(opts).transportConfig(ctx, cfg)
}

func (o *options) transportConfig(ctx context.Context, cfg Config) (opensearch.Config, error) {
	if err := cfg.Validate(); err != nil {
		return opensearch.Config{}, errors.Join(ErrClientBootstrap, err)
	}

	addr := cfg.Address()
	log := o.log.With(logger.Address(addr))

	cred := NewCredential(cfg.Username, cfg.Password, log)

	var tlsConfig *tls.Config
	if cfg.Scheme.Encrypted() {
		var err error
		tlsConfig, err = NewTrustBuilder(o.loader, log).Build(ctx, cfg.CACertPath)
		if err != nil {
			return opensearch.Config{}, errors.Join(ErrClientBootstrap, err)
		}
		if tlsConfig.RootCAs == nil {
			log.WarnContext(ctx, "Connecting over TLS with default trust")
		}
	} else if !isBlank(cfg.CACertPath) {
		log.DebugContext(ctx, "CA certificate ignored for plain http connection", logger.Path(cfg.CACertPath))
	}

	ocfg := opensearch.Config{
		Addresses: []string{addr},
	}
	cred.apply(&ocfg)

	if tlsConfig != nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = tlsConfig
		ocfg.Transport = transport
	}

	return ocfg, nil
}

// New bootstraps an OpenSearch client for cfg. The returned client is safe for
// concurrent use. Any failure aborts construction and wraps ErrClientBootstrap;
// a partially configured client is never returned.
func New(ctx context.Context, cfg Config, opts ...Option) (*opensearch.Client, error) {
	o := newOptions(opts)

	ocfg, err := o.transportConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client, err := opensearch.NewClient(ocfg)
	if err != nil {
		return nil, errors.Join(ErrClientBootstrap, ErrConnectionFailed, err)
	}

	if o.healthcheck {
		if err := Healthcheck(client)(ctx); err != nil {
			return nil, errors.Join(ErrClientBootstrap, err)
		}
	}

	o.log.DebugContext(ctx, "OpenSearch client ready", "config", cfg)
	return client, nil
}

// Connect is New followed by a healthcheck.
func Connect(ctx context.Context, cfg Config, opts ...Option) (*opensearch.Client, error) {
	return New(ctx, cfg, append(opts, WithHealthcheck())...)
}
