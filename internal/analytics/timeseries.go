package analytics

import (
	"time"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
)

// MaxFollowUpWeeks is the length of the follow-up program.
const MaxFollowUpWeeks = 12

// TimeSeriesAnchor is the program start date; week w is dated anchor + 7w days.
var TimeSeriesAnchor = time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

// BuildTimeSeries returns the baseline point (week 0) followed by one point per
// week that has at least MinimumCohortSize observations. Smaller weeks are omitted.
func BuildTimeSeries(users []domain.User) []domain.TimeSeriesDataPoint {
	baseline := make([]domain.ClinicalScores, 0, len(users))
	for i := range users {
		baseline = append(baseline, users[i].BaselineScores)
	}

	series := []domain.TimeSeriesDataPoint{weekPoint(0, baseline)}

	for week := 1; week <= MaxFollowUpWeeks; week++ {
		observations := make([]domain.ClinicalScores, 0, len(users))
		for i := range users {
			if len(users[i].FollowUpScores) >= week {
				observations = append(observations, users[i].FollowUpScores[week-1].ClinicalScores)
			}
		}
		if len(observations) < domain.MinimumCohortSize {
			continue
		}
		series = append(series, weekPoint(week, observations))
	}
	return series
}

func weekPoint(week int, scores []domain.ClinicalScores) domain.TimeSeriesDataPoint {
	phq9 := make([]float64, len(scores))
	gad7 := make([]float64, len(scores))
	who5 := make([]float64, len(scores))
	for i, s := range scores {
		phq9[i], gad7[i], who5[i] = s.PHQ9, s.GAD7, s.WHO5
	}
	return domain.TimeSeriesDataPoint{
		Date:       TimeSeriesAnchor.AddDate(0, 0, 7*week).Format("2006-01-02"),
		Week:       week,
		PHQ9Mean:   Round1(mean(phq9)),
		GAD7Mean:   Round1(mean(gad7)),
		WHO5Mean:   Round1(mean(who5)),
		SampleSize: len(scores),
	}
}
