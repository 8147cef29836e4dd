package middleware

import (
	"net/http"
	"time"

	"github.com/blaisecz/wellness-outcomes/pkg/problem"
	"github.com/go-chi/httprate"
)

// RateLimit limits each client IP to requests per window.
func RateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			problem.TooManyRequests("Rate limit exceeded, retry later").Write(w)
		}),
	)
}
