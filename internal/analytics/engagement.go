package analytics

import "github.com/blaisecz/wellness-outcomes/internal/domain"

// CalculateEngagementMetrics summarises participation over the full cohort,
// including users who never attended a session.
func CalculateEngagementMetrics(users []domain.User) domain.EngagementMetrics {
	n := len(users)
	engaged, dropped := 0, 0
	sessions := make([]float64, 0, n)
	timeToFirst := make([]float64, 0, n)
	var split domain.ModalitySplit

	for i := range users {
		e := users[i].Engagement
		if e.Sessions >= 1 {
			engaged++
		}
		if e.Dropout {
			dropped++
		}
		sessions = append(sessions, float64(e.Sessions))
		timeToFirst = append(timeToFirst, e.TimeToFirstSession)

		switch e.Modality {
		case domain.ModalityVideo:
			split.Video++
		case domain.ModalityChat:
			split.Chat++
		case domain.ModalityPhone:
			split.Phone++
		case domain.ModalityMixed:
			split.Mixed++
		}
	}

	return domain.EngagementMetrics{
		EnrolledCount:         n,
		EngagedCount:          engaged,
		EngagementRate:        percentOf(engaged, n),
		AvgSessionsPerUser:    Round1(mean(sessions)),
		DropoutRate:           percentOf(dropped, n),
		AvgTimeToFirstSession: Round1(mean(timeToFirst)),
		ModalitySplit:         split,
	}
}
