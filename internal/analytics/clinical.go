package analytics

import "github.com/blaisecz/wellness-outcomes/internal/domain"

// CalculateClinicalOutcomes compares baseline and latest scores on all three instruments.
func CalculateClinicalOutcomes(users []domain.User) domain.ClinicalOutcomes {
	n := len(users)
	baselinePHQ9 := make([]float64, 0, n)
	baselineGAD7 := make([]float64, 0, n)
	baselineWHO5 := make([]float64, 0, n)
	currentPHQ9 := make([]float64, 0, n)
	currentGAD7 := make([]float64, 0, n)
	currentWHO5 := make([]float64, 0, n)

	phq9Improved, gad7Improved, who5Improved := 0, 0, 0
	for i := range users {
		baseline := users[i].BaselineScores
		latest := users[i].LatestScores()

		baselinePHQ9 = append(baselinePHQ9, baseline.PHQ9)
		baselineGAD7 = append(baselineGAD7, baseline.GAD7)
		baselineWHO5 = append(baselineWHO5, baseline.WHO5)
		currentPHQ9 = append(currentPHQ9, latest.PHQ9)
		currentGAD7 = append(currentGAD7, latest.GAD7)
		currentWHO5 = append(currentWHO5, latest.WHO5)

		// PHQ-9 and GAD-7 improve downward, WHO-5 upward
		if baseline.PHQ9-latest.PHQ9 >= domain.PHQ9MeaningfulImprovement {
			phq9Improved++
		}
		if baseline.GAD7-latest.GAD7 >= domain.GAD7MeaningfulImprovement {
			gad7Improved++
		}
		if latest.WHO5-baseline.WHO5 >= domain.WHO5MeaningfulImprovement {
			who5Improved++
		}
	}

	return domain.ClinicalOutcomes{
		PHQ9: domain.PHQ9Outcomes{
			BaselineMean:                 Round1(mean(baselinePHQ9)),
			CurrentMean:                  Round1(mean(currentPHQ9)),
			MeanChange:                   Round1(mean(baselinePHQ9) - mean(currentPHQ9)),
			ClinicallyImprovedCount:      phq9Improved,
			ClinicallyImprovedPercent:    percentOf(phq9Improved, n),
			SeverityMovement:             CalculateSeverityMovement(users),
			BaselineSeverityDistribution: CalculateSeverityDistribution(baselinePHQ9),
			CurrentSeverityDistribution:  CalculateSeverityDistribution(currentPHQ9),
		},
		GAD7: domain.GAD7Outcomes{
			BaselineMean:              Round1(mean(baselineGAD7)),
			CurrentMean:               Round1(mean(currentGAD7)),
			MeanChange:                Round1(mean(baselineGAD7) - mean(currentGAD7)),
			ClinicallyImprovedCount:   gad7Improved,
			ClinicallyImprovedPercent: percentOf(gad7Improved, n),
		},
		WHO5: domain.WHO5Outcomes{
			BaselineMean:                Round1(mean(baselineWHO5)),
			CurrentMean:                 Round1(mean(currentWHO5)),
			MeanChange:                  Round1(mean(currentWHO5) - mean(baselineWHO5)),
			MeaningfullyImprovedCount:   who5Improved,
			MeaningfullyImprovedPercent: percentOf(who5Improved, n),
		},
	}
}

// CalculateSeverityDistribution buckets PHQ-9 scores into the severity bands, in band order.
func CalculateSeverityDistribution(scores []float64) []domain.SeverityBand {
	counts := make([]int, len(domain.PHQ9SeverityBands))
	for _, s := range scores {
		if i := domain.PHQ9SeverityIndex(s); i >= 0 {
			counts[i]++
		}
	}

	distribution := make([]domain.SeverityBand, len(domain.PHQ9SeverityBands))
	for i, band := range domain.PHQ9SeverityBands {
		distribution[i] = domain.SeverityBand{
			Label:      band.Label,
			Count:      counts[i],
			Percentage: percentOf(counts[i], len(scores)),
		}
	}
	return distribution
}

// CalculateSeverityMovement compares each user's baseline band with their latest band.
func CalculateSeverityMovement(users []domain.User) domain.SeverityMovement {
	var movement domain.SeverityMovement
	for i := range users {
		baselineIndex := domain.PHQ9SeverityIndex(users[i].BaselineScores.PHQ9)
		currentIndex := domain.PHQ9SeverityIndex(users[i].LatestScores().PHQ9)

		switch {
		case currentIndex < baselineIndex:
			movement.Improved++
		case currentIndex > baselineIndex:
			movement.Worsened++
		default:
			movement.Maintained++
		}
	}
	return movement
}
