package handler

import (
	"context"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
)

// MockAnalyticsService is a mock implementation of AnalyticsService
type MockAnalyticsService struct {
	getFunc     func(ctx context.Context, orgID string) (*domain.OrganizationAnalytics, error)
	getAllFunc  func(ctx context.Context) ([]domain.OrganizationAnalytics, error)
	previewFunc func(ctx context.Context, req *domain.PreviewRequest) (*domain.OrganizationAnalytics, error)
	listFunc    func(ctx context.Context) ([]domain.Organization, error)
	statsFunc   func(ctx context.Context) (*domain.DatasetStats, error)
}

func (m *MockAnalyticsService) GetOrganizationAnalytics(ctx context.Context, orgID string) (*domain.OrganizationAnalytics, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, orgID)
	}
	return nil, domain.ErrNotFound
}

func (m *MockAnalyticsService) GetAllOrganizationsAnalytics(ctx context.Context) ([]domain.OrganizationAnalytics, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return []domain.OrganizationAnalytics{}, nil
}

func (m *MockAnalyticsService) Preview(ctx context.Context, req *domain.PreviewRequest) (*domain.OrganizationAnalytics, error) {
	if m.previewFunc != nil {
		return m.previewFunc(ctx, req)
	}
	return &domain.OrganizationAnalytics{Organization: req.Organization, MinimumCohortMet: len(req.Users) >= domain.MinimumCohortSize}, nil
}

func (m *MockAnalyticsService) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []domain.Organization{}, nil
}

func (m *MockAnalyticsService) GetOrganization(ctx context.Context, orgID string) (*domain.Organization, error) {
	orgs, err := m.ListOrganizations(ctx)
	if err != nil {
		return nil, err
	}
	for _, org := range orgs {
		if org.OrgID == orgID {
			org := org
			return &org, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockAnalyticsService) DatasetStats(ctx context.Context) (*domain.DatasetStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx)
	}
	return &domain.DatasetStats{}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	highlightsFunc func(ctx context.Context, orgID string) (*domain.InsightsResponse, error)
	generateFunc   func(ctx context.Context, orgID string) (*domain.InsightsResponse, error)
	feedbackFunc   func(ctx context.Context, orgID, traceID string, score int, comment string) error
}

func (m *MockInsightsService) Highlights(ctx context.Context, orgID string) (*domain.InsightsResponse, error) {
	if m.highlightsFunc != nil {
		return m.highlightsFunc(ctx, orgID)
	}
	return &domain.InsightsResponse{OrgID: orgID}, nil
}

func (m *MockInsightsService) Generate(ctx context.Context, orgID string) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, orgID)
	}
	return &domain.InsightsResponse{OrgID: orgID}, nil
}

func (m *MockInsightsService) SubmitFeedback(ctx context.Context, orgID, traceID string, score int, comment string) error {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, orgID, traceID, score, comment)
	}
	return nil
}

// Helper functions
func testOrganizations() []domain.Organization {
	return []domain.Organization{
		{OrgID: "org-techcorp", Name: "TechCorp Industries", Industry: "Technology", TotalEmployees: 2500, EnrolledEmployees: 320, AvgHourlyCost: 75, ProgramCost: 180000,
			ReportingPeriod: domain.ReportingPeriod{Start: "2025-07-01", End: "2025-09-30"}},
		{OrgID: "org-healthfirst", Name: "HealthFirst Medical", Industry: "Healthcare", TotalEmployees: 4200, EnrolledEmployees: 580, AvgHourlyCost: 65, ProgramCost: 290000,
			ReportingPeriod: domain.ReportingPeriod{Start: "2025-07-01", End: "2025-09-30"}},
		{OrgID: "org-financeplus", Name: "FinancePlus Group", Industry: "Financial Services", TotalEmployees: 1800, EnrolledEmployees: 245, AvgHourlyCost: 95, ProgramCost: 150000,
			ReportingPeriod: domain.ReportingPeriod{Start: "2025-07-01", End: "2025-09-30"}},
	}
}

func testAnalytics(orgID string, minimumMet bool) *domain.OrganizationAnalytics {
	org := testOrganizations()[0]
	org.OrgID = orgID
	return &domain.OrganizationAnalytics{
		Organization: org,
		Clinical: domain.ClinicalOutcomes{PHQ9: domain.PHQ9Outcomes{
			BaselineMean: 13.4, CurrentMean: 8.1, MeanChange: 5.3,
			BaselineSeverityDistribution: []domain.SeverityBand{{Label: "Minimal", Count: 10, Percentage: 100}},
			CurrentSeverityDistribution:  []domain.SeverityBand{{Label: "Minimal", Count: 10, Percentage: 100}},
		}},
		ROI:              domain.ROIMetrics{ProgramCost: 180000, TotalSavings: 300000, NetBenefit: 120000, ROI: 66.7, PaybackPeriod: "7 months"},
		GeneratedAt:      "2025-10-01T12:00:00Z",
		Disclaimer:       domain.Disclaimer,
		MinimumCohortMet: minimumMet,
	}
}
