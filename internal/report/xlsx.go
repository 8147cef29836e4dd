package report

import (
	"bytes"
	"fmt"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/tealeg/xlsx/v3"
)

// Sheet names in workbook order.
const (
	SheetSummary      = "Summary"
	SheetClinical     = "Clinical"
	SheetProductivity = "Productivity & ROI"
	SheetTimeSeries   = "Time Series"
)

// Workbook builds the XLSX report.
func Workbook(a *domain.OrganizationAnalytics) (*xlsx.File, error) {
	file := xlsx.NewFile()

	components := []struct {
		name string
		fn   func(sh *xlsx.Sheet, a *domain.OrganizationAnalytics)
	}{
		{SheetSummary, addSummary},
		{SheetClinical, addClinical},
		{SheetProductivity, addProductivity},
		{SheetTimeSeries, addTimeSeries},
	}
	for _, c := range components {
		sh, err := file.AddSheet(c.name)
		if err != nil {
			return nil, fmt.Errorf("add sheet %s: %w", c.name, err)
		}
		c.fn(sh, a)
	}
	return file, nil
}

// RenderXLSX returns the workbook bytes.
func RenderXLSX(a *domain.OrganizationAnalytics) ([]byte, error) {
	file, err := Workbook(a)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func addRow(sh *xlsx.Sheet, values ...interface{}) {
	row := sh.AddRow()
	for _, v := range values {
		row.AddCell().SetValue(v)
	}
}

func addSummary(sh *xlsx.Sheet, a *domain.OrganizationAnalytics) {
	org := a.Organization
	addRow(sh, org.Name)
	addRow(sh, "Mental Wellness Program: Executive Outcomes Report")
	addRow(sh, "Reporting Period", org.ReportingPeriod.Start+" to "+org.ReportingPeriod.End)
	addRow(sh, "Industry", org.Industry)
	addRow(sh, "Total Employees", org.TotalEmployees)
	sh.AddRow()

	addRow(sh, "Metric", "Value", "Context")
	for _, h := range Highlights(a) {
		addRow(sh, h.Label, h.Value, h.Subtext)
	}
	sh.AddRow()
	addRow(sh, a.Disclaimer)
	addRow(sh, "Generated", a.GeneratedAt)
}

func addClinical(sh *xlsx.Sheet, a *domain.OrganizationAnalytics) {
	c := a.Clinical
	addRow(sh, "Measure", "Baseline Mean", "Current Mean", "Mean Change", "Improved Count", "Improved %")
	addRow(sh, "PHQ-9", c.PHQ9.BaselineMean, c.PHQ9.CurrentMean, c.PHQ9.MeanChange, c.PHQ9.ClinicallyImprovedCount, c.PHQ9.ClinicallyImprovedPercent)
	addRow(sh, "GAD-7", c.GAD7.BaselineMean, c.GAD7.CurrentMean, c.GAD7.MeanChange, c.GAD7.ClinicallyImprovedCount, c.GAD7.ClinicallyImprovedPercent)
	addRow(sh, "WHO-5", c.WHO5.BaselineMean, c.WHO5.CurrentMean, c.WHO5.MeanChange, c.WHO5.MeaningfullyImprovedCount, c.WHO5.MeaningfullyImprovedPercent)
	sh.AddRow()

	addRow(sh, "Severity Movement", "Improved", "Maintained", "Worsened")
	m := c.PHQ9.SeverityMovement
	addRow(sh, "PHQ-9", m.Improved, m.Maintained, m.Worsened)
	sh.AddRow()

	addRow(sh, "PHQ-9 Band", "Baseline Count", "Baseline %", "Current Count", "Current %")
	for i, band := range c.PHQ9.BaselineSeverityDistribution {
		current := domain.SeverityBand{}
		if i < len(c.PHQ9.CurrentSeverityDistribution) {
			current = c.PHQ9.CurrentSeverityDistribution[i]
		}
		addRow(sh, band.Label, band.Count, band.Percentage, current.Count, current.Percentage)
	}
}

func addProductivity(sh *xlsx.Sheet, a *domain.OrganizationAnalytics) {
	p := a.Productivity
	addRow(sh, "Measure", "Baseline Mean", "Current Mean", "Reduction", "Reduction %")
	addRow(sh, "Absenteeism (hours/month)", p.Absenteeism.BaselineMean, p.Absenteeism.CurrentMean, p.Absenteeism.Reduction, p.Absenteeism.ReductionPercent)
	addRow(sh, "Presenteeism (%)", p.Presenteeism.BaselineMean, p.Presenteeism.CurrentMean, p.Presenteeism.Reduction, p.Presenteeism.ReductionPercent)
	sh.AddRow()

	addRow(sh, "Hours Regained (quarter)", p.HoursRegained.Total)
	addRow(sh, "Hours Regained per Employee", p.HoursRegained.PerEmployee)
	addRow(sh, "Hours Regained (annualized)", p.HoursRegained.Annualized)
	sh.AddRow()

	addRow(sh, "Savings (quarter, conservative)", p.CostSavings.Low)
	addRow(sh, "Savings (quarter, midpoint)", p.CostSavings.Mid)
	addRow(sh, "Savings (quarter, optimistic)", p.CostSavings.High)
	addRow(sh, "Savings (annualized)", p.CostSavings.Annualized)
	sh.AddRow()

	addRow(sh, "Program Cost", a.ROI.ProgramCost)
	addRow(sh, "Total Savings", a.ROI.TotalSavings)
	addRow(sh, "Net Benefit", a.ROI.NetBenefit)
	addRow(sh, "ROI %", a.ROI.ROI)
	addRow(sh, "Payback Period", a.ROI.PaybackPeriod)
}

func addTimeSeries(sh *xlsx.Sheet, a *domain.OrganizationAnalytics) {
	addRow(sh, "Week", "Date", "PHQ-9 Mean", "GAD-7 Mean", "WHO-5 Mean", "Sample Size")
	for _, p := range a.TimeSeries {
		addRow(sh, p.Week, p.Date, p.PHQ9Mean, p.GAD7Mean, p.WHO5Mean, p.SampleSize)
	}
}
