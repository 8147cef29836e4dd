package report

import "github.com/blaisecz/wellness-outcomes/internal/domain"

func sampleAnalytics() *domain.OrganizationAnalytics {
	return &domain.OrganizationAnalytics{
		Organization: domain.Organization{
			OrgID:             "org-techcorp",
			Name:              "TechCorp  Industries",
			Industry:          "Technology",
			TotalEmployees:    2500,
			EnrolledEmployees: 320,
			AvgHourlyCost:     75,
			ProgramCost:       180000,
			ReportingPeriod:   domain.ReportingPeriod{Start: "2025-07-01", End: "2025-09-30"},
		},
		Clinical: domain.ClinicalOutcomes{
			PHQ9: domain.PHQ9Outcomes{
				BaselineMean: 13.4, CurrentMean: 8.1, MeanChange: 5.3,
				ClinicallyImprovedCount: 170, ClinicallyImprovedPercent: 53.1,
				SeverityMovement: domain.SeverityMovement{Improved: 120, Maintained: 180, Worsened: 20},
				BaselineSeverityDistribution: []domain.SeverityBand{
					{Label: "Minimal", Count: 20, Percentage: 6.3},
					{Label: "Mild", Count: 80, Percentage: 25},
					{Label: "Moderate", Count: 120, Percentage: 37.5},
					{Label: "Moderately Severe", Count: 70, Percentage: 21.9},
					{Label: "Severe", Count: 30, Percentage: 9.4},
				},
				CurrentSeverityDistribution: []domain.SeverityBand{
					{Label: "Minimal", Count: 100, Percentage: 31.3},
					{Label: "Mild", Count: 120, Percentage: 37.5},
					{Label: "Moderate", Count: 60, Percentage: 18.8},
					{Label: "Moderately Severe", Count: 30, Percentage: 9.4},
					{Label: "Severe", Count: 10, Percentage: 3.1},
				},
			},
			GAD7: domain.GAD7Outcomes{BaselineMean: 11.2, CurrentMean: 7.5, MeanChange: 3.7, ClinicallyImprovedCount: 140, ClinicallyImprovedPercent: 43.8},
			WHO5: domain.WHO5Outcomes{BaselineMean: 38.9, CurrentMean: 52, MeanChange: 13.1, MeaningfullyImprovedCount: 190, MeaningfullyImprovedPercent: 59.4},
		},
		Productivity: domain.ProductivityOutcomes{
			Absenteeism:   domain.WorkLossChange{BaselineMean: 14.2, CurrentMean: 10.6, Reduction: 3.6, ReductionPercent: 25.4},
			Presenteeism:  domain.WorkLossChange{BaselineMean: 32, CurrentMean: 24, Reduction: 8, ReductionPercent: 25},
			HoursRegained: domain.HoursRegained{Total: 4300, PerEmployee: 13.4, Annualized: 17200},
			CostSavings:   domain.CostSavings{Low: 225750, Mid: 322500, High: 419250, Annualized: 1290000},
		},
		Engagement: domain.EngagementMetrics{
			EnrolledCount: 320, EngagedCount: 320, EngagementRate: 100,
			AvgSessionsPerUser: 7.9, DropoutRate: 17.5, AvgTimeToFirstSession: 7.4,
			ModalitySplit: domain.ModalitySplit{Video: 80, Chat: 85, Phone: 75, Mixed: 80},
		},
		ROI: domain.ROIMetrics{ProgramCost: 180000, TotalSavings: 1290000, NetBenefit: 1110000, ROI: 616.7, PaybackPeriod: "2 months"},
		TimeSeries: []domain.TimeSeriesDataPoint{
			{Date: "2025-07-08", Week: 1, PHQ9Mean: 12.9, GAD7Mean: 10.8, WHO5Mean: 40.3, SampleSize: 320},
			{Date: "2025-07-15", Week: 2, PHQ9Mean: 12.1, GAD7Mean: 10.2, WHO5Mean: 42, SampleSize: 318},
		},
		GeneratedAt:      "2025-10-01T12:00:00Z",
		Disclaimer:       domain.Disclaimer,
		MinimumCohortMet: true,
	}
}
