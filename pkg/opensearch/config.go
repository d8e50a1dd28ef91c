package opensearch

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// Scheme selects plain or encrypted transport.
type Scheme string

const (
	SchemeHTTP  Scheme = "http"
	SchemeHTTPS Scheme = "https"
)

// Valid reports whether s is http or https.
func (s Scheme) Valid() bool {
	return s == SchemeHTTP || s == SchemeHTTPS
}

// Encrypted reports whether connections use TLS.
func (s Scheme) Encrypted() bool {
	return s == SchemeHTTPS
}

// UnmarshalText accepts http or https in any case.
func (s *Scheme) UnmarshalText(text []byte) error {
	v := Scheme(strings.ToLower(strings.TrimSpace(string(text))))
	if !v.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidScheme, string(text))
	}
	*s = v
	return nil
}

// Config holds cluster connection parameters with environment variable mapping.
// Uses struct tags compatible with github.com/dmitrymomot/searchkit/pkg/config.
type Config struct {
	Host       string `env:"OPENSEARCH_HOST" envDefault:"localhost"`
	Port       int    `env:"OPENSEARCH_PORT" envDefault:"9200"`
	Scheme     Scheme `env:"OPENSEARCH_SCHEME" envDefault:"http"`
	Username   string `env:"OPENSEARCH_USERNAME"`
	Password   string `env:"OPENSEARCH_PASSWORD"`
	CACertPath string `env:"OPENSEARCH_CA_CERT_PATH"` // PEM or DER; file path, s3://bucket/key or any prefix served by the resource loader
}

// Validate checks host, port and scheme.
func (c Config) Validate() error {
	if isBlank(c.Host) {
		return fmt.Errorf("%w: host is required", ErrConfiguration)
	}
	if strings.ContainsAny(c.Host, "/?#@") {
		return fmt.Errorf("%w: host %q must be a bare hostname or IP address", ErrConfiguration, c.Host)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range 1-65535", ErrConfiguration, c.Port)
	}
	if !c.Scheme.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrConfiguration, ErrInvalidScheme, string(c.Scheme))
	}
	return nil
}

// Address returns the cluster URL, e.g. https://es.local:9200.
func (c Config) Address() string {
	u := url.URL{
		Scheme: string(c.Scheme),
		Host:   net.JoinHostPort(strings.Trim(strings.TrimSpace(c.Host), "[]"), strconv.Itoa(c.Port)),
	}
	return u.String()
}

// LogValue keeps the password out of logs.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("address", c.Address()),
		slog.String("username", c.Username),
		slog.Bool("password_set", !isBlank(c.Password)),
		slog.String("ca_cert_path", c.CACertPath),
	)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
