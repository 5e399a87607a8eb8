package middleware

import "net/http"

type NoCacheMiddleware struct{}

func NewNoCacheMiddleware() *NoCacheMiddleware {
	return &NoCacheMiddleware{}
}

// NoCache applies non-caching headers on every response so browsers and
// proxies never serve stale authenticated content.
func (m *NoCacheMiddleware) NoCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}
