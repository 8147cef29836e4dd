// Package scheduler periodically drops cached cohorts and recomputes
// analytics for every organization.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/blaisecz/wellness-outcomes/internal/logging"
	"github.com/blaisecz/wellness-outcomes/internal/metrics"
	"github.com/robfig/cron/v3"
)

const runTimeout = 5 * time.Minute

// Purger drops cached provider snapshots.
type Purger interface {
	Purge()
}

// Computer recomputes analytics for all organizations.
type Computer interface {
	GetAllOrganizationsAnalytics(ctx context.Context) ([]domain.OrganizationAnalytics, error)
}

// Scheduler refreshes analytics on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	spec     string
	cache    Purger
	computer Computer

	// one refresh at a time
	mu sync.Mutex
}

// New creates a Scheduler. cache may be nil when no cohort cache is in use.
func New(spec string, cache Purger, computer Computer) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		spec:     spec,
		cache:    cache,
		computer: computer,
	}
}

// Start registers the refresh job and starts the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		_ = s.RunNow(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", s.spec, err)
	}

	s.cron.Start()
	logging.Info().Str("schedule", s.spec).Msg("analytics refresh scheduler started")
	return nil
}

// Stop halts the cron loop and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	logging.Info().Msg("analytics refresh scheduler stopped")
}

// RunNow purges the cache and recomputes every organization.
func (s *Scheduler) RunNow(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	if s.cache != nil {
		s.cache.Purge()
	}

	results, err := s.computer.GetAllOrganizationsAnalytics(ctx)
	if err != nil {
		metrics.RefreshRunsTotal.WithLabelValues("error").Inc()
		logging.Error().Err(err).Msg("analytics refresh failed")
		return err
	}

	gated := 0
	for _, a := range results {
		if !a.MinimumCohortMet {
			gated++
			logging.Warn().Str("org_id", a.Organization.OrgID).Int("cohort_size", a.Engagement.EnrolledCount).
				Msg("cohort below privacy threshold")
		}
	}

	metrics.RefreshRunsTotal.WithLabelValues("success").Inc()
	logging.Info().
		Int("organizations", len(results)).
		Int("gated", gated).
		Dur("duration", time.Since(start)).
		Msg("analytics refreshed")
	return nil
}
