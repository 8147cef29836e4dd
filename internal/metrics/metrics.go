// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Computation outcomes.
const (
	OutcomeOK               = "ok"
	OutcomeNotFound         = "not_found"
	OutcomeInsufficientData = "insufficient_data"
	OutcomeError            = "error"
)

var (
	// Analytics engine
	AnalyticsComputationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wellness_analytics_computation_duration_seconds",
			Help:    "Duration of organization analytics computations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"org_id"},
	)

	AnalyticsComputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellness_analytics_computations_total",
			Help: "Total number of analytics computations by outcome",
		},
		[]string{"outcome"},
	)

	CohortSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wellness_cohort_size",
			Help: "Enrolled users in the most recent cohort snapshot per organization",
		},
		[]string{"org_id"},
	)

	SanitizedFieldsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wellness_analytics_sanitized_fields_total",
			Help: "Non-finite analytics fields replaced with zero",
		},
	)

	// Cohort cache
	CohortCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wellness_cohort_cache_hits_total",
			Help: "Total number of cohort cache hits",
		},
	)

	CohortCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wellness_cohort_cache_misses_total",
			Help: "Total number of cohort cache misses",
		},
	)

	// Scheduler
	RefreshRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellness_refresh_runs_total",
			Help: "Total number of scheduled analytics refresh runs",
		},
		[]string{"status"},
	)

	// HTTP API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wellness_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wellness_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordComputation records one orchestrator call.
func RecordComputation(orgID, outcome string, cohortSize int, duration time.Duration) {
	AnalyticsComputationsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK || outcome == OutcomeInsufficientData {
		AnalyticsComputationDuration.WithLabelValues(orgID).Observe(duration.Seconds())
		CohortSize.WithLabelValues(orgID).Set(float64(cohortSize))
	}
}

// RecordAPIRequest records an API request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
