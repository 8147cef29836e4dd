package domain

// Disclaimer accompanies every analytics snapshot.
const Disclaimer = "All data is aggregated and anonymized. This is a prototype demonstration and should not be used for clinical decisions."

// SeverityBand is the share of a cohort inside one PHQ-9 band.
// @Description Count and percentage of the cohort in a PHQ-9 severity band.
type SeverityBand struct {
	Label      string  `json:"label" example:"Moderate"`
	Count      int     `json:"count" example:"42"`
	Percentage float64 `json:"percentage" example:"13.1"`
}

// SeverityMovement counts band transitions from baseline to latest score.
type SeverityMovement struct {
	Improved   int `json:"improved" example:"120"`
	Maintained int `json:"maintained" example:"180"`
	Worsened   int `json:"worsened" example:"20"`
}

// PHQ9Outcomes summarises depression scores.
type PHQ9Outcomes struct {
	BaselineMean                 float64          `json:"baselineMean" example:"13.4"`
	CurrentMean                  float64          `json:"currentMean" example:"8.1"`
	MeanChange                   float64          `json:"meanChange" example:"5.3"`
	ClinicallyImprovedCount      int              `json:"clinicallyImprovedCount" example:"170"`
	ClinicallyImprovedPercent    float64          `json:"clinicallyImprovedPercent" example:"53.1"`
	SeverityMovement             SeverityMovement `json:"severityMovement"`
	BaselineSeverityDistribution []SeverityBand   `json:"baselineSeverityDistribution"`
	CurrentSeverityDistribution  []SeverityBand   `json:"currentSeverityDistribution"`
}

// GAD7Outcomes summarises anxiety scores.
type GAD7Outcomes struct {
	BaselineMean              float64 `json:"baselineMean" example:"11.2"`
	CurrentMean               float64 `json:"currentMean" example:"7.5"`
	MeanChange                float64 `json:"meanChange" example:"3.7"`
	ClinicallyImprovedCount   int     `json:"clinicallyImprovedCount" example:"140"`
	ClinicallyImprovedPercent float64 `json:"clinicallyImprovedPercent" example:"43.8"`
}

// WHO5Outcomes summarises well-being scores. Higher is better.
type WHO5Outcomes struct {
	BaselineMean                float64 `json:"baselineMean" example:"38.9"`
	CurrentMean                 float64 `json:"currentMean" example:"52.0"`
	MeanChange                  float64 `json:"meanChange" example:"13.1"`
	MeaningfullyImprovedCount   int     `json:"meaningfullyImprovedCount" example:"190"`
	MeaningfullyImprovedPercent float64 `json:"meaningfullyImprovedPercent" example:"59.4"`
}

// ClinicalOutcomes groups the three instruments.
// @Description Population-level clinical outcome statistics.
type ClinicalOutcomes struct {
	PHQ9 PHQ9Outcomes `json:"phq9"`
	GAD7 GAD7Outcomes `json:"gad7"`
	WHO5 WHO5Outcomes `json:"who5"`
}

// WorkLossChange compares baseline and current means of one work-loss measure.
type WorkLossChange struct {
	BaselineMean     float64 `json:"baselineMean" example:"14.2"`
	CurrentMean      float64 `json:"currentMean" example:"10.6"`
	Reduction        float64 `json:"reduction" example:"3.6"`
	ReductionPercent float64 `json:"reductionPercent" example:"25.4"`
}

// HoursRegained is productive time recovered by the cohort.
type HoursRegained struct {
	// Quarterly total across the cohort
	Total       int     `json:"total" example:"4300"`
	PerEmployee float64 `json:"perEmployee" example:"13.4"`
	Annualized  int     `json:"annualized" example:"17200"`
}

// CostSavings is the value of regained hours with conservative and optimistic bounds.
type CostSavings struct {
	Low        int `json:"low" example:"225750"`
	Mid        int `json:"mid" example:"322500"`
	High       int `json:"high" example:"419250"`
	Annualized int `json:"annualized" example:"1290000"`
}

// ProductivityOutcomes summarises work-loss changes and their value.
// @Description Absenteeism, presenteeism, hours regained and cost savings.
type ProductivityOutcomes struct {
	Absenteeism   WorkLossChange `json:"absenteeism"`
	Presenteeism  WorkLossChange `json:"presenteeism"`
	HoursRegained HoursRegained  `json:"hoursRegained"`
	CostSavings   CostSavings    `json:"costSavings"`
}

// ModalitySplit counts participants per care modality.
type ModalitySplit struct {
	Video int `json:"video" example:"80"`
	Chat  int `json:"chat" example:"85"`
	Phone int `json:"phone" example:"75"`
	Mixed int `json:"mixed" example:"80"`
}

// EngagementMetrics gives program usage context.
// @Description Participation, dropout and modality summary.
type EngagementMetrics struct {
	EnrolledCount         int           `json:"enrolledCount" example:"320"`
	EngagedCount          int           `json:"engagedCount" example:"320"`
	EngagementRate        float64       `json:"engagementRate" example:"100"`
	AvgSessionsPerUser    float64       `json:"avgSessionsPerUser" example:"7.9"`
	DropoutRate           float64       `json:"dropoutRate" example:"17.5"`
	AvgTimeToFirstSession float64       `json:"avgTimeToFirstSession" example:"7.4"`
	ModalitySplit         ModalitySplit `json:"modalitySplit"`
}

// ROIMetrics is the program's annual return.
// @Description Net benefit, return percentage and payback period.
type ROIMetrics struct {
	ProgramCost  float64 `json:"programCost" example:"180000"`
	TotalSavings int     `json:"totalSavings" example:"300000"`
	NetBenefit   int     `json:"netBenefit" example:"120000"`
	ROI          float64 `json:"roi" example:"66.7"`
	// "N months" when within a year, otherwise "X.Y years"
	PaybackPeriod string `json:"paybackPeriod" example:"7 months"`
}

// TimeSeriesDataPoint is the cohort mean for one week.
type TimeSeriesDataPoint struct {
	Date       string  `json:"date" example:"2025-07-08"`
	Week       int     `json:"week" example:"1"`
	PHQ9Mean   float64 `json:"phq9Mean" example:"12.9"`
	GAD7Mean   float64 `json:"gad7Mean" example:"10.8"`
	WHO5Mean   float64 `json:"who5Mean" example:"40.3"`
	SampleSize int     `json:"sampleSize" example:"320"`
}

// OrganizationAnalytics is an immutable analytics snapshot for one organization.
// @Description Complete analytics for an organization's wellness program.
type OrganizationAnalytics struct {
	Organization     Organization          `json:"organization"`
	Clinical         ClinicalOutcomes      `json:"clinical"`
	Productivity     ProductivityOutcomes  `json:"productivity"`
	Engagement       EngagementMetrics     `json:"engagement"`
	ROI              ROIMetrics            `json:"roi"`
	TimeSeries       []TimeSeriesDataPoint `json:"timeSeries"`
	GeneratedAt      string                `json:"generatedAt" example:"2025-10-01T12:00:00Z"`
	Disclaimer       string                `json:"disclaimer"`
	MinimumCohortMet bool                  `json:"minimumCohortMet" example:"true"`
}

// PreviewRequest is an ad-hoc cohort submitted for analysis.
// @Description Organization profile and cohort records to analyse without a stored dataset.
type PreviewRequest struct {
	Organization Organization `json:"organization" validate:"required"`
	Users        []User       `json:"users" validate:"required,min=1,dive"`
}

// DatasetStats describes the records a provider currently serves.
type DatasetStats struct {
	TotalOrganizations int            `json:"totalOrganizations" example:"4"`
	TotalUsers         int            `json:"totalUsers" example:"1695"`
	UsersByOrg         []OrgUserCount `json:"usersByOrg"`
}

// OrgUserCount is the enrolled user count for one organization.
type OrgUserCount struct {
	OrgID     string `json:"orgId" example:"org-techcorp"`
	Name      string `json:"name" example:"TechCorp Industries"`
	UserCount int    `json:"userCount" example:"320"`
}
