package opensearch

import "errors"

var (
	// ErrConfiguration indicates missing or invalid connection settings, including
	// a CA certificate path that points at nothing. Always fatal.
	ErrConfiguration = errors.New("opensearch configuration error")

	// ErrInvalidScheme indicates a scheme other than http or https.
	ErrInvalidScheme = errors.New("invalid scheme: must be http or https")

	// ErrCertificateParse indicates the CA resource is not a readable X.509 certificate.
	ErrCertificateParse = errors.New("failed to parse CA certificate")

	// ErrTrustContextBuild indicates an I/O or crypto failure while assembling the trust store.
	ErrTrustContextBuild = errors.New("failed to build TLS trust context")

	// ErrClientBootstrap wraps every failure returned by New and Connect.
	// Use errors.Is with the more specific errors above to find the cause.
	ErrClientBootstrap = errors.New("opensearch client bootstrap failed")

	// ErrConnectionFailed indicates the OpenSearch client could not be created
	// from an otherwise valid transport configuration.
	ErrConnectionFailed = errors.New("opensearch connection failed")

	// ErrHealthcheckFailed indicates the cluster is unreachable or unhealthy.
	ErrHealthcheckFailed = errors.New("opensearch healthcheck failed")
)
