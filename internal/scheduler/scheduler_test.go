package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/blaisecz/wellness-outcomes/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type mockPurger struct {
	purges int
}

func (m *mockPurger) Purge() {
	m.purges++
}

type mockComputer struct {
	results []domain.OrganizationAnalytics
	err     error
	calls   int
}

func (m *mockComputer) GetAllOrganizationsAnalytics(ctx context.Context) ([]domain.OrganizationAnalytics, error) {
	m.calls++
	return m.results, m.err
}

func TestRunNow(t *testing.T) {
	cache := &mockPurger{}
	computer := &mockComputer{results: []domain.OrganizationAnalytics{
		{Organization: domain.Organization{OrgID: "org-a"}, MinimumCohortMet: true},
		{Organization: domain.Organization{OrgID: "org-b"}, MinimumCohortMet: false},
	}}
	s := New("0 3 * * *", cache, computer)

	before := testutil.ToFloat64(metrics.RefreshRunsTotal.WithLabelValues("success"))
	if err := s.RunNow(context.Background()); err != nil {
		t.Fatalf("RunNow() error = %v", err)
	}

	if cache.purges != 1 {
		t.Errorf("expected cache purged once, got %d", cache.purges)
	}
	if computer.calls != 1 {
		t.Errorf("expected one recompute, got %d", computer.calls)
	}
	if got := testutil.ToFloat64(metrics.RefreshRunsTotal.WithLabelValues("success")) - before; got != 1 {
		t.Errorf("expected success counter +1, got %v", got)
	}
}

func TestRunNow_Error(t *testing.T) {
	computer := &mockComputer{err: errors.New("database down")}
	s := New("0 3 * * *", nil, computer)

	before := testutil.ToFloat64(metrics.RefreshRunsTotal.WithLabelValues("error"))
	if err := s.RunNow(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if got := testutil.ToFloat64(metrics.RefreshRunsTotal.WithLabelValues("error")) - before; got != 1 {
		t.Errorf("expected error counter +1, got %v", got)
	}
}

func TestStart_InvalidSchedule(t *testing.T) {
	s := New("not a schedule", nil, &mockComputer{})
	if err := s.Start(); err == nil {
		t.Error("expected invalid schedule to be rejected")
	}
}

func TestStartStop(t *testing.T) {
	s := New("@every 1h", nil, &mockComputer{})
	if err := s.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	s.Stop()
}
