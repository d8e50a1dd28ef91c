// Package requestid correlates probe requests with the cluster calls they
// trigger.
//
// Middleware accepts a client supplied X-Request-ID when it is a short token
// of letters, digits, '-' or '_', and otherwise generates a UUIDv4. The ID is
// echoed in the response, stored in the request context and, through
// LogExtractor, added to every log record written with that context.
// opensearch.Healthcheck forwards it to the cluster as X-Opaque-Id, so the
// same value shows up in OpenSearch task and slow logs.
package requestid
