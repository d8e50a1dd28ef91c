package opensearch

import (
	"context"
	"crypto/sha256"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/searchkit/pkg/logger"
	"github.com/dmitrymomot/searchkit/pkg/resource"
)

// TrustAlias names the single entry of a trust store.
const TrustAlias = "ca"

// maxCertSize bounds how much of a CA resource is read.
const maxCertSize = 1 << 20

// TrustMaterial is a parsed CA certificate and a pool holding only that certificate.
type TrustMaterial struct {
	Alias       string
	Certificate *x509.Certificate
	Pool        *x509.CertPool

	// Ignored counts additional PEM certificates that followed the first one.
	Ignored int
}

// Fingerprint returns the hex SHA-256 of the DER certificate.
func (m *TrustMaterial) Fingerprint() string {
	sum := sha256.Sum256(m.Certificate.Raw)
	return hex.EncodeToString(sum[:])
}

// TLSConfig returns a client config that trusts exactly this authority.
func (m *TrustMaterial) TLSConfig() *tls.Config {
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
		RootCAs:    m.Pool,
	}
}

// DefaultTLSConfig trusts the platform root store.
func DefaultTLSConfig() *tls.Config {
	return &tls.Config{MinVersion: tls.VersionTLS12}
}

// ParseCertificate decodes the first certificate of a PEM document or a raw
// DER certificate. It also returns how many further PEM certificates were skipped.
func ParseCertificate(data []byte) (*x509.Certificate, int, error) {
	if len(data) == 0 {
		return nil, 0, fmt.Errorf("%w: empty input", ErrCertificateParse)
	}

	var (
		first   *pem.Block
		extra   int
		sawPEM  bool
		rest    = data
		block   *pem.Block
		skipped []string
	)
	for {
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		sawPEM = true
		if block.Type != "CERTIFICATE" {
			skipped = append(skipped, block.Type)
			continue
		}
		if first == nil {
			first = block
			continue
		}
		extra++
	}

	if sawPEM && first == nil {
		return nil, 0, fmt.Errorf("%w: no CERTIFICATE block found (got %v)", ErrCertificateParse, skipped)
	}

	der := data
	if first != nil {
		der = first.Bytes
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrCertificateParse, err)
	}
	return cert, extra, nil
}

// LoadTrustMaterial reads and parses the CA certificate at path through loader.
// A missing resource yields ErrConfiguration, bad bytes ErrCertificateParse and
// read failures ErrTrustContextBuild. Nothing is cached.
func LoadTrustMaterial(ctx context.Context, loader resource.Loader, path string) (*TrustMaterial, error) {
	if !loader.Exists(ctx, path) {
		return nil, fmt.Errorf("%w: CA certificate not found at %s", ErrConfiguration, path)
	}

	rc, err := loader.Open(ctx, path)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return nil, fmt.Errorf("%w: CA certificate not found at %s", ErrConfiguration, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrTrustContextBuild, path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxCertSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrTrustContextBuild, path, err)
	}
	if len(data) > maxCertSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrCertificateParse, path, maxCertSize)
	}

	cert, extra, err := ParseCertificate(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	pool := x509.NewCertPool()
	pool.AddCert(cert)

	return &TrustMaterial{
		Alias:       TrustAlias,
		Certificate: cert,
		Pool:        pool,
		Ignored:     extra,
	}, nil
}

// TrustBuilder turns a configured CA path into a TLS client config.
type TrustBuilder struct {
	loader resource.Loader
	log    *slog.Logger
}

// NewTrustBuilder returns a builder reading through loader.
// Nil arguments fall back to a plain file loader and slog.Default.
func NewTrustBuilder(loader resource.Loader, log *slog.Logger) *TrustBuilder {
	if loader == nil {
		loader = resource.NewFileLoader("")
	}
	if log == nil {
		log = slog.Default()
	}
	return &TrustBuilder{loader: loader, log: log}
}

// Load reads the trust material at path and logs anything worth a second look.
func (b *TrustBuilder) Load(ctx context.Context, path string) (*TrustMaterial, error) {
	m, err := LoadTrustMaterial(ctx, b.loader, path)
	if err != nil {
		return nil, err
	}

	if m.Ignored > 0 {
		b.log.WarnContext(ctx, "CA resource holds more than one certificate, only the first is trusted",
			logger.Path(path), slog.Int("ignored", m.Ignored))
	}
	if !m.Certificate.IsCA {
		b.log.WarnContext(ctx, "Trusted certificate is not marked as a certificate authority",
			logger.Path(path), slog.String("subject", m.Certificate.Subject.String()))
	}
	b.log.DebugContext(ctx, "Loaded CA certificate",
		logger.Path(path),
		slog.String("alias", m.Alias),
		slog.String("subject", m.Certificate.Subject.String()),
		logger.Fingerprint(m.Fingerprint()),
	)
	return m, nil
}

// Build returns a TLS config trusting only the CA at caCertPath. A blank path
// yields platform default trust and a reduced-assurance warning; every other
// problem is returned as an error.
func (b *TrustBuilder) Build(ctx context.Context, caCertPath string) (*tls.Config, error) {
	if isBlank(caCertPath) {
		b.log.WarnContext(ctx, "No CA certificate configured, falling back to default trust (reduced assurance)")
		return DefaultTLSConfig(), nil
	}

	m, err := b.Load(ctx, caCertPath)
	if err != nil {
		return nil, err
	}
	return m.TLSConfig(), nil
}
