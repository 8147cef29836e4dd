package analytics

import "github.com/blaisecz/wellness-outcomes/internal/domain"

const (
	// MonthlyWorkHours converts presenteeism percentages into hours.
	MonthlyWorkHours = 160.0
	// AnnualizationFactor scales the quarterly data window to a year.
	AnnualizationFactor = 4.0
	// ConservativeFactor and OptimisticFactor bound the mid savings estimate.
	ConservativeFactor = 0.7
	OptimisticFactor   = 1.3
)

// CalculateProductivityOutcomes derives hours regained and their value at the
// organization's average hourly cost. The data window is treated as one quarter.
func CalculateProductivityOutcomes(users []domain.User, org domain.Organization) domain.ProductivityOutcomes {
	n := len(users)
	baselineAbsenteeism := make([]float64, 0, n)
	currentAbsenteeism := make([]float64, 0, n)
	baselinePresenteeism := make([]float64, 0, n)
	currentPresenteeism := make([]float64, 0, n)
	for i := range users {
		baselineAbsenteeism = append(baselineAbsenteeism, users[i].BaselineProductivity.AbsenteeismHours)
		currentAbsenteeism = append(currentAbsenteeism, users[i].CurrentProductivity.AbsenteeismHours)
		baselinePresenteeism = append(baselinePresenteeism, users[i].BaselineProductivity.PresenteeismPercent)
		currentPresenteeism = append(currentPresenteeism, users[i].CurrentProductivity.PresenteeismPercent)
	}

	baselineAbsMean := mean(baselineAbsenteeism)
	currentAbsMean := mean(currentAbsenteeism)
	baselinePresMean := mean(baselinePresenteeism)
	currentPresMean := mean(currentPresenteeism)

	absenteeismReduction := baselineAbsMean - currentAbsMean
	presenteeismReduction := baselinePresMean - currentPresMean

	baselinePresenteeismHours := baselinePresMean / 100 * MonthlyWorkHours
	currentPresenteeismHours := currentPresMean / 100 * MonthlyWorkHours

	hoursRegainedPerEmployee := absenteeismReduction + (baselinePresenteeismHours - currentPresenteeismHours)
	totalHoursRegained := hoursRegainedPerEmployee * float64(n)
	annualizedHours := totalHoursRegained * AnnualizationFactor

	return domain.ProductivityOutcomes{
		Absenteeism: domain.WorkLossChange{
			BaselineMean:     Round1(baselineAbsMean),
			CurrentMean:      Round1(currentAbsMean),
			Reduction:        Round1(absenteeismReduction),
			ReductionPercent: ratioPercent(absenteeismReduction, baselineAbsMean),
		},
		Presenteeism: domain.WorkLossChange{
			BaselineMean:     Round1(baselinePresMean),
			CurrentMean:      Round1(currentPresMean),
			Reduction:        Round1(presenteeismReduction),
			ReductionPercent: ratioPercent(presenteeismReduction, baselinePresMean),
		},
		HoursRegained: domain.HoursRegained{
			Total:       RoundInt(totalHoursRegained),
			PerEmployee: Round1(hoursRegainedPerEmployee),
			Annualized:  RoundInt(annualizedHours),
		},
		CostSavings: CalculateCostSavings(totalHoursRegained, org.AvgHourlyCost),
	}
}

// CalculateCostSavings values quarterly hours at hourlyCost with 70%/130% bounds.
func CalculateCostSavings(quarterlyHours, hourlyCost float64) domain.CostSavings {
	mid := quarterlyHours * hourlyCost
	return domain.CostSavings{
		Low:        RoundInt(mid * ConservativeFactor),
		Mid:        RoundInt(mid),
		High:       RoundInt(mid * OptimisticFactor),
		Annualized: RoundInt(mid * AnnualizationFactor),
	}
}
