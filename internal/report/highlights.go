package report

import (
	"fmt"

	"github.com/blaisecz/wellness-outcomes/internal/analytics"
	"github.com/blaisecz/wellness-outcomes/internal/domain"
)

// Highlights returns the headline figures shown on the executive summary.
func Highlights(a *domain.OrganizationAnalytics) []domain.Highlight {
	org := a.Organization
	phq9 := a.Clinical.PHQ9

	workforceShare := 0.0
	if org.TotalEmployees > 0 {
		workforceShare = analytics.Round1(float64(a.Engagement.EnrolledCount) / float64(org.TotalEmployees) * 100)
	}
	relativeChange := 0
	if phq9.BaselineMean != 0 {
		relativeChange = analytics.RoundInt(phq9.MeanChange / phq9.BaselineMean * 100)
	}

	return []domain.Highlight{
		{Label: "Enrolled", Value: Number(a.Engagement.EnrolledCount), Subtext: Percent(workforceShare) + " of workforce"},
		{Label: "Engaged", Value: Percent(a.Engagement.EngagementRate), Subtext: Number(a.Engagement.EngagedCount) + " active users"},
		{Label: "Avg PHQ-9 Change", Value: "-" + Decimal(phq9.MeanChange), Subtext: fmt.Sprintf("points reduced (%d%%)", relativeChange)},
		{Label: "Clinically Improved", Value: Percent(phq9.ClinicallyImprovedPercent), Subtext: Number(phq9.ClinicallyImprovedCount) + " employees"},
		{Label: "Hours Regained", Value: Number(a.Productivity.HoursRegained.Annualized), Subtext: "annualized total"},
		{Label: "Est. Annual Savings", Value: Currency(float64(a.Productivity.CostSavings.Annualized)), Subtext: "productivity gains"},
		{Label: "Return on Investment", Value: Percent(a.ROI.ROI), Subtext: "Payback: " + a.ROI.PaybackPeriod},
	}
}
