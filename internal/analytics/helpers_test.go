package analytics

import (
	"fmt"
	"math/rand"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/jaswdr/faker"
)

func testOrg() domain.Organization {
	return domain.Organization{
		OrgID:             "org-test",
		Name:              "Test Org",
		Industry:          "Technology",
		TotalEmployees:    100,
		EnrolledEmployees: 10,
		AvgHourlyCost:     75,
		ProgramCost:       180000,
		ReportingPeriod:   domain.ReportingPeriod{Start: "2025-07-01", End: "2025-09-30"},
	}
}

// userWithPHQ9 builds a user whose PHQ-9 moves from baseline to latest over weeks follow-ups.
func userWithPHQ9(id int, baseline, latest float64, weeks int) domain.User {
	u := domain.User{
		UserID:         fmt.Sprintf("user-%d", id),
		OrgID:          "org-test",
		BaselineScores: domain.ClinicalScores{PHQ9: baseline, GAD7: 10, WHO5: 40},
		Engagement:     domain.EngagementData{Sessions: 6, Modality: domain.ModalityVideo, TimeToFirstSession: 3},
	}
	for w := 1; w <= weeks; w++ {
		score := baseline
		if w == weeks {
			score = latest
		}
		u.FollowUpScores = append(u.FollowUpScores, domain.FollowUpScore{
			ClinicalScores: domain.ClinicalScores{PHQ9: score, GAD7: 10, WHO5: 40},
			WeekNumber:     w,
			Date:           TimeSeriesAnchor.AddDate(0, 0, 7*w).Format("2006-01-02"),
		})
	}
	return u
}

// randomCohort produces a reproducible cohort with integer scores inside instrument ranges.
func randomCohort(seed int64, size int) []domain.User {
	f := faker.NewWithSeed(rand.NewSource(seed))
	users := make([]domain.User, 0, size)
	for i := 0; i < size; i++ {
		u := domain.User{
			UserID: fmt.Sprintf("user-%d", i),
			OrgID:  "org-test",
			BaselineScores: domain.ClinicalScores{
				PHQ9: float64(f.IntBetween(0, 27)),
				GAD7: float64(f.IntBetween(0, 21)),
				WHO5: float64(f.IntBetween(0, 100)),
			},
			BaselineProductivity: domain.ProductivityMetrics{
				AbsenteeismHours:    float64(f.IntBetween(4, 32)),
				PresenteeismPercent: float64(f.IntBetween(10, 55)),
			},
			CurrentProductivity: domain.ProductivityMetrics{
				AbsenteeismHours:    float64(f.IntBetween(0, 20)),
				PresenteeismPercent: float64(f.IntBetween(5, 40)),
			},
			Engagement: domain.EngagementData{
				Sessions:           f.IntBetween(0, 14),
				Modality:           domain.Modalities[f.IntBetween(0, len(domain.Modalities)-1)],
				TimeToFirstSession: float64(f.IntBetween(1, 14)),
				Dropout:            f.IntBetween(0, 4) == 0,
			},
		}
		weeks := f.IntBetween(0, MaxFollowUpWeeks)
		for w := 1; w <= weeks; w++ {
			u.FollowUpScores = append(u.FollowUpScores, domain.FollowUpScore{
				ClinicalScores: domain.ClinicalScores{
					PHQ9: float64(f.IntBetween(0, 27)),
					GAD7: float64(f.IntBetween(0, 21)),
					WHO5: float64(f.IntBetween(0, 100)),
				},
				WeekNumber: w,
				Date:       TimeSeriesAnchor.AddDate(0, 0, 7*w).Format("2006-01-02"),
			})
		}
		users = append(users, u)
	}
	return users
}
