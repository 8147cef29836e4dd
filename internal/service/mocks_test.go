package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/blaisecz/wellness-outcomes/internal/langfuse"
)

// MockOrganizationRepository is a mock implementation of OrganizationRepository
type MockOrganizationRepository struct {
	orgs []domain.Organization
	err  error
}

func NewMockOrganizationRepository(orgs ...domain.Organization) *MockOrganizationRepository {
	return &MockOrganizationRepository{orgs: orgs}
}

func (m *MockOrganizationRepository) List(ctx context.Context) ([]domain.Organization, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Organization, len(m.orgs))
	copy(out, m.orgs)
	return out, nil
}

func (m *MockOrganizationRepository) GetByID(ctx context.Context, orgID string) (*domain.Organization, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, org := range m.orgs {
		if org.OrgID == orgID {
			org := org
			return &org, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockOrganizationRepository) SetError(err error) {
	m.err = err
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mu     sync.Mutex
	cohort map[string][]domain.User
	calls  int
	err    error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{cohort: make(map[string][]domain.User)}
}

func (m *MockUserRepository) Add(users ...domain.User) {
	for _, u := range users {
		m.cohort[u.OrgID] = append(m.cohort[u.OrgID], u)
	}
}

func (m *MockUserRepository) ListByOrg(ctx context.Context, orgID string) ([]domain.User, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.cohort[orgID], nil
}

func (m *MockUserRepository) CountByOrg(ctx context.Context) (map[string]int, error) {
	if m.err != nil {
		return nil, m.err
	}
	counts := make(map[string]int, len(m.cohort))
	for orgID, users := range m.cohort {
		counts[orgID] = len(users)
	}
	return counts, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// mockLLM returns a canned narrative or error.
type mockLLM struct {
	output *domain.LLMInsightsOutput
	err    error
	got    *domain.InsightsContext
}

func (m *mockLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	m.got = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// mockLangfuseClient records trace and score calls.
type mockLangfuseClient struct {
	enabled  bool
	traceErr error
	scoreErr error
	traces   []langfuse.TraceInput
	scores   []langfuse.ScoreInput
}

func (m *mockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.traces = append(m.traces, in)
	id := in.ID
	if id == "" {
		id = "trace-generated"
	}
	return id, m.traceErr
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return m.scoreErr
}

// Helper functions
func testOrganization(orgID string) domain.Organization {
	return domain.Organization{
		OrgID:             orgID,
		Name:              "Org " + orgID,
		Industry:          "Technology",
		TotalEmployees:    1000,
		EnrolledEmployees: 10,
		AvgHourlyCost:     75,
		ProgramCost:       180000,
		ReportingPeriod:   domain.ReportingPeriod{Start: "2025-07-01", End: "2025-09-30"},
	}
}

func testUsers(orgID string, n int) []domain.User {
	users := make([]domain.User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, domain.User{
			UserID:               fmt.Sprintf("%s-user-%d", orgID, i),
			OrgID:                orgID,
			BaselineScores:       domain.ClinicalScores{PHQ9: 15, GAD7: 12, WHO5: 36},
			BaselineProductivity: domain.ProductivityMetrics{AbsenteeismHours: 20, PresenteeismPercent: 40},
			CurrentProductivity:  domain.ProductivityMetrics{AbsenteeismHours: 10, PresenteeismPercent: 30},
			Engagement:           domain.EngagementData{Sessions: 6, Modality: domain.ModalityVideo, TimeToFirstSession: 4},
			FollowUpScores: []domain.FollowUpScore{
				{ClinicalScores: domain.ClinicalScores{PHQ9: 12, GAD7: 10, WHO5: 40}, WeekNumber: 1, Date: "2025-07-08"},
				{ClinicalScores: domain.ClinicalScores{PHQ9: 8, GAD7: 7, WHO5: 52}, WeekNumber: 2, Date: "2025-07-15"},
			},
		})
	}
	return users
}
