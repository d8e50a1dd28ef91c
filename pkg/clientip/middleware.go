package clientip

import "net/http"

// Middleware resolves the caller address once per request so handlers and
// log extractors read it from the context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(SetIPToContext(r.Context(), GetIP(r))))
	})
}
