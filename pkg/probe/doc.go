// Package probe serves liveness and readiness endpoints for processes that
// hold an OpenSearch client.
//
//	GET /livez   200 ALIVE while the process runs
//	GET /readyz  200 READY when every check passes, 503 NOT_READY otherwise
//
// Checks are plain functions, so opensearch.Healthcheck plugs in directly:
//
//	h := probe.Router(log, []probe.Check{{Name: "opensearch", Func: opensearch.Healthcheck(client)}})
//	srv := probe.NewServer(cfg, log)
//	err := srv.Run(ctx, h) // returns after ctx is cancelled and shutdown completes
//
// Requests pass through requestid.Middleware and clientip.Middleware. With
// their LogExtractor functions registered on the logger, failed checks are
// logged with the caller's address and a request ID that the cluster also sees.
package probe
