package report

import (
	"fmt"
	"strings"

	"github.com/blaisecz/wellness-outcomes/internal/analytics"
	"github.com/blaisecz/wellness-outcomes/internal/domain"
)

const barWidth = 20

// RenderMarkdown writes the executive report as GitHub-flavoured Markdown.
func RenderMarkdown(a *domain.OrganizationAnalytics) string {
	var b strings.Builder
	org := a.Organization

	fmt.Fprintf(&b, "# %s\n\n", org.Name)
	b.WriteString("Mental Wellness Program: Executive Outcomes Report\n\n")
	fmt.Fprintf(&b, "Reporting Period: %s to %s\n\n", org.ReportingPeriod.Start, org.ReportingPeriod.End)

	b.WriteString("## Return on Investment\n\n")
	fmt.Fprintf(&b, "**%s** return. Program investment of %s generated %s in estimated savings (payback: %s).\n\n",
		Percent(a.ROI.ROI), Currency(a.ROI.ProgramCost), Currency(float64(a.ROI.TotalSavings)), a.ROI.PaybackPeriod)

	b.WriteString("## Key Performance Indicators\n\n")
	b.WriteString("| Metric | Value | Context |\n|---|---:|---|\n")
	for _, h := range Highlights(a) {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", h.Label, h.Value, h.Subtext)
	}
	b.WriteString("\n")

	writeClinical(&b, a)
	writeProductivity(&b, a)
	writeEngagement(&b, a)
	writeMethodology(&b, a)
	return b.String()
}

func writeClinical(b *strings.Builder, a *domain.OrganizationAnalytics) {
	c := a.Clinical
	b.WriteString("## Clinical Outcomes\n\n")
	b.WriteString("| Measure | Baseline | Current | Change | Meaningfully Improved |\n|---|---:|---:|---:|---:|\n")
	fmt.Fprintf(b, "| PHQ-9 (Depression) | %s | %s | -%s | %s (%s) |\n",
		Decimal(c.PHQ9.BaselineMean), Decimal(c.PHQ9.CurrentMean), Decimal(c.PHQ9.MeanChange),
		Percent(c.PHQ9.ClinicallyImprovedPercent), Number(c.PHQ9.ClinicallyImprovedCount))
	fmt.Fprintf(b, "| GAD-7 (Anxiety) | %s | %s | -%s | %s (%s) |\n",
		Decimal(c.GAD7.BaselineMean), Decimal(c.GAD7.CurrentMean), Decimal(c.GAD7.MeanChange),
		Percent(c.GAD7.ClinicallyImprovedPercent), Number(c.GAD7.ClinicallyImprovedCount))
	fmt.Fprintf(b, "| WHO-5 (Well-being) | %s | %s | +%s | %s (%s) |\n\n",
		Decimal(c.WHO5.BaselineMean), Decimal(c.WHO5.CurrentMean), Decimal(c.WHO5.MeanChange),
		Percent(c.WHO5.MeaningfullyImprovedPercent), Number(c.WHO5.MeaningfullyImprovedCount))

	m := c.PHQ9.SeverityMovement
	fmt.Fprintf(b, "Severity movement: %s improved, %s maintained, %s worsened.\n\n",
		Number(m.Improved), Number(m.Maintained), Number(m.Worsened))

	writeSeverity(b, "PHQ-9 Baseline Severity", c.PHQ9.BaselineSeverityDistribution)
	writeSeverity(b, "PHQ-9 Current Severity", c.PHQ9.CurrentSeverityDistribution)
}

func writeSeverity(b *strings.Builder, title string, bands []domain.SeverityBand) {
	fmt.Fprintf(b, "### %s\n\n| Band | Share | Employees |\n|---|---|---:|\n", title)
	for _, band := range bands {
		filled := analytics.RoundInt(band.Percentage / 100 * barWidth)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		fmt.Fprintf(b, "| %s | `%s` %s | %s |\n", band.Label, bar, Percent(band.Percentage), Number(band.Count))
	}
	b.WriteString("\n")
}

func writeProductivity(b *strings.Builder, a *domain.OrganizationAnalytics) {
	p := a.Productivity
	b.WriteString("## Business Impact\n\n")
	b.WriteString("| Measure | Baseline | Current | Reduction |\n|---|---:|---:|---:|\n")
	fmt.Fprintf(b, "| Absenteeism (hours/month) | %s | %s | %s (%s) |\n",
		Decimal(p.Absenteeism.BaselineMean), Decimal(p.Absenteeism.CurrentMean),
		Decimal(p.Absenteeism.Reduction), Percent(p.Absenteeism.ReductionPercent))
	fmt.Fprintf(b, "| Presenteeism (%% productivity lost) | %s | %s | %s (%s) |\n\n",
		Decimal(p.Presenteeism.BaselineMean), Decimal(p.Presenteeism.CurrentMean),
		Decimal(p.Presenteeism.Reduction), Percent(p.Presenteeism.ReductionPercent))

	fmt.Fprintf(b, "Hours regained: %s this quarter (%s per employee), %s annualized.\n\n",
		Number(p.HoursRegained.Total), Decimal(p.HoursRegained.PerEmployee), Number(p.HoursRegained.Annualized))

	b.WriteString("### Annual Productivity Savings\n\n")
	fmt.Fprintf(b, "**%s** estimated annual savings. Quarterly range: %s (conservative) to %s (optimistic), midpoint %s.\n\n",
		Currency(float64(p.CostSavings.Annualized)), Currency(float64(p.CostSavings.Low)),
		Currency(float64(p.CostSavings.High)), Currency(float64(p.CostSavings.Mid)))

	fmt.Fprintf(b, "Net benefit: %s on a program cost of %s.\n\n", Currency(float64(a.ROI.NetBenefit)), Currency(a.ROI.ProgramCost))
}

func writeEngagement(b *strings.Builder, a *domain.OrganizationAnalytics) {
	e := a.Engagement
	b.WriteString("## Engagement\n\n")
	b.WriteString("| Metric | Value |\n|---|---:|\n")
	fmt.Fprintf(b, "| Enrolled | %s |\n", Number(e.EnrolledCount))
	fmt.Fprintf(b, "| Engaged (1+ session) | %s (%s) |\n", Number(e.EngagedCount), Percent(e.EngagementRate))
	fmt.Fprintf(b, "| Avg sessions per user | %s |\n", Decimal(e.AvgSessionsPerUser))
	fmt.Fprintf(b, "| Dropout rate | %s |\n", Percent(e.DropoutRate))
	fmt.Fprintf(b, "| Avg days to first session | %s |\n\n", Decimal(e.AvgTimeToFirstSession))
	fmt.Fprintf(b, "Modality: video %s, chat %s, phone %s, mixed %s.\n\n",
		Number(e.ModalitySplit.Video), Number(e.ModalitySplit.Chat), Number(e.ModalitySplit.Phone), Number(e.ModalitySplit.Mixed))
}

func writeMethodology(b *strings.Builder, a *domain.OrganizationAnalytics) {
	b.WriteString("## Methodology & Disclaimer\n\n")
	fmt.Fprintf(b, "- Meaningful change: PHQ-9 reduction of %d+ points, GAD-7 reduction of %d+ points, WHO-5 increase of %d+ points.\n",
		domain.PHQ9MeaningfulImprovement, domain.GAD7MeaningfulImprovement, domain.WHO5MeaningfulImprovement)
	fmt.Fprintf(b, "- Hours regained combine absenteeism reduction with presenteeism reduction applied to %s working hours per month.\n",
		Decimal(analytics.MonthlyWorkHours))
	fmt.Fprintf(b, "- Savings value regained hours at %s/hour. The data window is one quarter, annualized x%s; bounds use %s%% and %s%% of the midpoint.\n",
		Currency(a.Organization.AvgHourlyCost), Decimal(analytics.AnnualizationFactor),
		Number(analytics.RoundInt(analytics.ConservativeFactor*100)), Number(analytics.RoundInt(analytics.OptimisticFactor*100)))
	fmt.Fprintf(b, "- Results are shown only for cohorts of %d or more employees.\n\n", domain.MinimumCohortSize)
	fmt.Fprintf(b, "_%s_\n\nGenerated %s.\n", a.Disclaimer, a.GeneratedAt)
}
