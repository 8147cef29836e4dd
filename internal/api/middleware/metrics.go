package middleware

import (
	"net/http"
	"time"

	"github.com/blaisecz/wellness-outcomes/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// Metrics records request counts and latency by route pattern so that path
// parameters do not explode label cardinality.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sr := newStatusRecorder(w)
		start := time.Now()

		next.ServeHTTP(sr, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		metrics.RecordAPIRequest(r.Method, route, sr.status, time.Since(start))
	})
}
