package opensearch_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/searchkit/pkg/config"
	"github.com/dmitrymomot/searchkit/pkg/opensearch"
)

func TestScheme_UnmarshalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want opensearch.Scheme
		err  bool
	}{
		{in: "http", want: opensearch.SchemeHTTP},
		{in: "HTTPS", want: opensearch.SchemeHTTPS},
		{in: " https ", want: opensearch.SchemeHTTPS},
		{in: "", err: true},
		{in: "ftp", err: true},
	}
	for _, tt := range tests {
		var s opensearch.Scheme
		err := s.UnmarshalText([]byte(tt.in))
		if tt.err {
			assert.ErrorIs(t, err, opensearch.ErrInvalidScheme, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, s)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := opensearch.Config{Host: "es.local", Port: 9200, Scheme: opensearch.SchemeHTTP}

	tests := []struct {
		name   string
		mutate func(*opensearch.Config)
		err    error
	}{
		{name: "valid", mutate: func(*opensearch.Config) {}},
		{name: "blank host", mutate: func(c *opensearch.Config) { c.Host = "  " }, err: opensearch.ErrConfiguration},
		{name: "host with scheme", mutate: func(c *opensearch.Config) { c.Host = "https://es.local" }, err: opensearch.ErrConfiguration},
		{name: "port zero", mutate: func(c *opensearch.Config) { c.Port = 0 }, err: opensearch.ErrConfiguration},
		{name: "port too large", mutate: func(c *opensearch.Config) { c.Port = 65536 }, err: opensearch.ErrConfiguration},
		{name: "port upper bound", mutate: func(c *opensearch.Config) { c.Port = 65535 }},
		{name: "unknown scheme", mutate: func(c *opensearch.Config) { c.Scheme = "ftp" }, err: opensearch.ErrInvalidScheme},
		{name: "ipv6 host", mutate: func(c *opensearch.Config) { c.Host = "::1" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, opensearch.ErrConfiguration)
		})
	}
}

func TestConfig_Address(t *testing.T) {
	t.Parallel()

	cfg := opensearch.Config{Host: "es.local", Port: 9200, Scheme: opensearch.SchemeHTTPS}
	assert.Equal(t, "https://es.local:9200", cfg.Address())

	cfg = opensearch.Config{Host: "::1", Port: 9201, Scheme: opensearch.SchemeHTTP}
	assert.Equal(t, "http://[::1]:9201", cfg.Address())

	cfg = opensearch.Config{Host: "[::1]", Port: 9201, Scheme: opensearch.SchemeHTTP}
	assert.Equal(t, "http://[::1]:9201", cfg.Address())
}

func TestConfig_LogValueHidesPassword(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, nil))
	log.Info("cfg", "config", opensearch.Config{
		Host: "es.local", Port: 9200, Scheme: opensearch.SchemeHTTPS,
		Username: "admin", Password: "hunter2",
	})

	out := buf.String()
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, "config.password_set=true")
	assert.Contains(t, out, "config.username=admin")
}

func TestConfig_LoadFromEnv(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)
	t.Setenv("OPENSEARCH_HOST", "es.internal")
	t.Setenv("OPENSEARCH_PORT", "9443")
	t.Setenv("OPENSEARCH_SCHEME", "HTTPS")
	t.Setenv("OPENSEARCH_USERNAME", "admin")
	t.Setenv("OPENSEARCH_PASSWORD", "secret")
	t.Setenv("OPENSEARCH_CA_CERT_PATH", "certs/ca.pem")

	var cfg opensearch.Config
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, opensearch.Config{
		Host:       "es.internal",
		Port:       9443,
		Scheme:     opensearch.SchemeHTTPS,
		Username:   "admin",
		Password:   "secret",
		CACertPath: "certs/ca.pem",
	}, cfg)
}

func TestConfig_LoadDefaults(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)
	var cfg opensearch.Config
	require.NoError(t, config.Load(&cfg, config.WithPrefix("SKTEST_")))
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 9200, cfg.Port)
	assert.Equal(t, opensearch.SchemeHTTP, cfg.Scheme)
}
