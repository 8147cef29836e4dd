package domain

// Highlight is one headline figure for the executive summary.
type Highlight struct {
	Label   string `json:"label" example:"Clinically Improved"`
	Value   string `json:"value" example:"53.1%"`
	Subtext string `json:"subtext,omitempty" example:"170 employees"`
}

// InsightsContext is the aggregate-only payload handed to the LLM.
// It never contains user-level records.
type InsightsContext struct {
	Organization Organization         `json:"organization"`
	Clinical     ClinicalOutcomes     `json:"clinical"`
	Productivity ProductivityOutcomes `json:"productivity"`
	Engagement   EngagementMetrics    `json:"engagement"`
	ROI          ROIMetrics           `json:"roi"`
}

// LLMInsightsOutput is the structured narrative returned by the LLM.
// @Description LLM-generated executive narrative.
type LLMInsightsOutput struct {
	Summary         string   `json:"summary"`
	Observations    []string `json:"observations"`
	Recommendations []string `json:"recommendations"`
}

// InsightsResponse is the executive insights payload.
// @Description Headline figures plus an optional LLM narrative.
type InsightsResponse struct {
	OrgID      string             `json:"orgId" example:"org-techcorp"`
	Highlights []Highlight        `json:"highlights"`
	Narrative  *LLMInsightsOutput `json:"narrative,omitempty"`
	// Trace ID for submitting feedback on the narrative
	TraceID string `json:"traceId,omitempty" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
}
