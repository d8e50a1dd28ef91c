// Package opensearch bootstraps secured clients for OpenSearch clusters on top
// of github.com/opensearch-project/opensearch-go/v2.
//
// A bootstrap takes a Config and produces a ready *opensearch.Client in one
// linear pass:
//
//  1. The Config is validated (host, port, scheme).
//  2. NewCredential turns username and password into a basic-auth Credential.
//     Both must be non-blank; a half-configured pair is logged and skipped.
//  3. For https, TrustBuilder reads the CA certificate at CACertPath through a
//     resource.Loader and builds a tls.Config whose RootCAs contain exactly that
//     certificate. System roots are not merged in. For http no TLS context is
//     built and CACertPath is ignored.
//  4. Address, credential and TLS context are assembled into opensearch.Config.
//
// # Usage
//
//	client, err := opensearch.New(ctx, opensearch.Config{
//	    Host:       "es.internal",
//	    Port:       9200,
//	    Scheme:     opensearch.SchemeHTTPS,
//	    Username:   "admin",
//	    Password:   "secret",
//	    CACertPath: "/etc/pki/search-ca.pem",
//	}, opensearch.WithLogger(log))
//
// Environment-based configuration:
//
//	var cfg opensearch.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	client, err := opensearch.Connect(ctx, cfg) // also pings the cluster
//
// # Trust policy
//
// An https Config without CACertPath falls back to the platform trust store and
// logs a warning. Deployments on a private PKI must set the path.
// A CACertPath that does not resolve is always fatal and never degrades to
// default trust.
//
// # Error Handling
//
// Every error from New, Connect and NewTransportConfig wraps ErrClientBootstrap
// together with the specific cause:
//
//	client, err := opensearch.New(ctx, cfg)
//	switch {
//	case errors.Is(err, opensearch.ErrConfiguration):
//	    // bad settings or missing CA file
//	case errors.Is(err, opensearch.ErrCertificateParse):
//	    // CA file is not a certificate
//	case errors.Is(err, opensearch.ErrTrustContextBuild):
//	    // CA file could not be read
//	}
//
// Healthcheck returns a probe function for readiness endpoints and wraps
// failures in ErrHealthcheckFailed.
package opensearch
