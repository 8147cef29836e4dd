package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
)

// Compute runs every calculator over one cohort snapshot and assembles the result.
// The cohort-size flag is advisory: statistics are computed for any non-empty cohort.
// An empty cohort returns domain.ErrInsufficientData.
func Compute(org domain.Organization, users []domain.User, now time.Time) (*domain.OrganizationAnalytics, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("organization %s has no enrolled users: %w", org.OrgID, domain.ErrInsufficientData)
	}

	productivity := CalculateProductivityOutcomes(users, org)

	result := &domain.OrganizationAnalytics{
		Organization:     org,
		Clinical:         CalculateClinicalOutcomes(users),
		Productivity:     productivity,
		Engagement:       CalculateEngagementMetrics(users),
		ROI:              CalculateROI(productivity, org),
		TimeSeries:       BuildTimeSeries(users),
		GeneratedAt:      now.UTC().Format(time.RFC3339),
		Disclaimer:       domain.Disclaimer,
		MinimumCohortMet: MinimumCohortMet(len(users)),
	}
	return result, nil
}

// MinimumCohortMet reports whether a cohort is large enough to display or export.
func MinimumCohortMet(cohortSize int) bool {
	return cohortSize >= domain.MinimumCohortSize
}

// Sanitize replaces non-finite numbers with 0 and returns the names of the
// fields it changed.
func Sanitize(a *domain.OrganizationAnalytics) []string {
	fields := []struct {
		name  string
		value *float64
	}{
		{"clinical.phq9.meanChange", &a.Clinical.PHQ9.MeanChange},
		{"clinical.gad7.meanChange", &a.Clinical.GAD7.MeanChange},
		{"clinical.who5.meanChange", &a.Clinical.WHO5.MeanChange},
		{"productivity.absenteeism.reductionPercent", &a.Productivity.Absenteeism.ReductionPercent},
		{"productivity.presenteeism.reductionPercent", &a.Productivity.Presenteeism.ReductionPercent},
		{"productivity.hoursRegained.perEmployee", &a.Productivity.HoursRegained.PerEmployee},
		{"engagement.avgSessionsPerUser", &a.Engagement.AvgSessionsPerUser},
		{"engagement.avgTimeToFirstSession", &a.Engagement.AvgTimeToFirstSession},
		{"roi.roi", &a.ROI.ROI},
	}

	var replaced []string
	for _, f := range fields {
		if math.IsNaN(*f.value) || math.IsInf(*f.value, 0) {
			*f.value = 0
			replaced = append(replaced, f.name)
		}
	}
	for i := range a.TimeSeries {
		p := &a.TimeSeries[i]
		for _, v := range []*float64{&p.PHQ9Mean, &p.GAD7Mean, &p.WHO5Mean} {
			if math.IsNaN(*v) || math.IsInf(*v, 0) {
				*v = 0
				replaced = append(replaced, fmt.Sprintf("timeSeries[%d]", p.Week))
			}
		}
	}
	return replaced
}
