package analytics

import (
	"fmt"
	"math"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
)

// PaybackNotComputable is reported when cost or savings make payback undefined.
const PaybackNotComputable = "not computable"

// CalculateROI compares annualized mid savings with the program cost.
func CalculateROI(productivity domain.ProductivityOutcomes, org domain.Organization) domain.ROIMetrics {
	totalSavings := float64(productivity.CostSavings.Annualized)
	programCost := org.ProgramCost
	netBenefit := totalSavings - programCost

	result := domain.ROIMetrics{
		ProgramCost:   programCost,
		TotalSavings:  RoundInt(totalSavings),
		NetBenefit:    RoundInt(netBenefit),
		PaybackPeriod: PaybackNotComputable,
	}
	if programCost <= 0 {
		return result
	}
	result.ROI = Round1(netBenefit / programCost * 100)

	if totalSavings <= 0 {
		return result
	}
	result.PaybackPeriod = FormatPayback(programCost / (totalSavings / 12))
	return result
}

// FormatPayback renders a payback period: whole months within a year, otherwise
// years to one decimal.
func FormatPayback(months float64) string {
	if math.IsNaN(months) || math.IsInf(months, 0) || months < 0 {
		return PaybackNotComputable
	}
	if months <= 12 {
		return fmt.Sprintf("%d months", RoundInt(months))
	}
	return fmt.Sprintf("%.1f years", Round1(months/12))
}
