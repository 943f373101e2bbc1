package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// rateLimitMiddleware applies a global token bucket across all callers.
// The scrape and liveness endpoints bypass it so monitoring keeps
// working under load.
func (s *Server) rateLimitMiddleware(perSecond, burst int) mux.MiddlewareFunc {
	if perSecond <= 0 {
		perSecond = 50
	}
	if burst <= 0 {
		burst = perSecond * 2
	}
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" || r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}
			if !limiter.Allow() {
				s.writeJSON(w, http.StatusTooManyRequests, map[string]string{
					"error": "rate limit exceeded",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
