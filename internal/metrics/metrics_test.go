package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordComputation(t *testing.T) {
	before := testutil.ToFloat64(AnalyticsComputationsTotal.WithLabelValues(OutcomeOK))

	RecordComputation("org-metrics-test", OutcomeOK, 12, 3*time.Millisecond)

	if got := testutil.ToFloat64(AnalyticsComputationsTotal.WithLabelValues(OutcomeOK)); got != before+1 {
		t.Errorf("ok counter = %v, want %v", got, before+1)
	}
	if got := testutil.ToFloat64(CohortSize.WithLabelValues("org-metrics-test")); got != 12 {
		t.Errorf("cohort size gauge = %v, want 12", got)
	}
}

func TestRecordComputation_NotFound(t *testing.T) {
	before := testutil.ToFloat64(AnalyticsComputationsTotal.WithLabelValues(OutcomeNotFound))

	RecordComputation("org-missing", OutcomeNotFound, 0, time.Millisecond)

	if got := testutil.ToFloat64(AnalyticsComputationsTotal.WithLabelValues(OutcomeNotFound)); got != before+1 {
		t.Errorf("not_found counter = %v, want %v", got, before+1)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	RecordAPIRequest("GET", "/api/health", 200, time.Millisecond)

	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/health", "200")); got < 1 {
		t.Errorf("request counter = %v, want >= 1", got)
	}
}
