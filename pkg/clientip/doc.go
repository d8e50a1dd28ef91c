// Package clientip resolves the address of the caller of an HTTP endpoint,
// honouring the forwarding headers set by load balancers and ingress proxies.
//
// Resolution checks X-Forwarded-For (first valid entry), then X-Real-IP, then
// falls back to the TCP peer in RemoteAddr. Invalid values are skipped.
//
//	r := chi.NewRouter()
//	r.Use(clientip.Middleware)
//	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
//	    ip := clientip.GetIPFromContext(r.Context())
//	    ...
//	})
//
// LogExtractor plugs the resolved address into logger.WithContextExtractors so
// every log line written with the request context carries client_ip.
package clientip
