package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blaisecz/wellness-outcomes/internal/analytics"
	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/blaisecz/wellness-outcomes/internal/logging"
	"github.com/blaisecz/wellness-outcomes/internal/metrics"
	"github.com/blaisecz/wellness-outcomes/internal/repository"
	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentOrgs bounds GetAllOrganizationsAnalytics fan-out.
const maxConcurrentOrgs = 4

// AnalyticsService assembles organization analytics from provider snapshots.
type AnalyticsService interface {
	// GetOrganizationAnalytics computes a fresh snapshot for one organization.
	// Returns domain.ErrNotFound for unknown organizations and
	// domain.ErrInsufficientData when the cohort is empty.
	GetOrganizationAnalytics(ctx context.Context, orgID string) (*domain.OrganizationAnalytics, error)
	// GetAllOrganizationsAnalytics computes every organization in provider order.
	// Organizations without enrolled users are left out.
	GetAllOrganizationsAnalytics(ctx context.Context) ([]domain.OrganizationAnalytics, error)
	// Preview computes analytics for an ad-hoc cohort that is not stored anywhere.
	Preview(ctx context.Context, req *domain.PreviewRequest) (*domain.OrganizationAnalytics, error)
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
	GetOrganization(ctx context.Context, orgID string) (*domain.Organization, error)
	DatasetStats(ctx context.Context) (*domain.DatasetStats, error)
}

type analyticsService struct {
	orgRepo  repository.OrganizationRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(orgRepo repository.OrganizationRepository, userRepo repository.UserRepository) AnalyticsService {
	return &analyticsService{
		orgRepo:  orgRepo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *analyticsService) GetOrganizationAnalytics(ctx context.Context, orgID string) (*domain.OrganizationAnalytics, error) {
	tracer := otel.Tracer("wellness-outcomes/analytics")
	ctx, span := tracer.Start(ctx, "AnalyticsService.GetOrganizationAnalytics",
		trace.WithAttributes(attribute.String("org.id", orgID)),
	)
	defer span.End()

	if inputJSON, err := json.Marshal(map[string]any{"org_id": orgID}); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	start := time.Now()
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		s.fail(span, orgID, err, 0, start)
		return nil, err
	}

	users, err := s.userRepo.ListByOrg(ctx, orgID)
	if err != nil {
		err = fmt.Errorf("list cohort for %s: %w", orgID, err)
		s.fail(span, orgID, err, 0, start)
		return nil, err
	}

	result, err := s.compute(ctx, *org, users)
	if err != nil {
		s.fail(span, orgID, err, len(users), start)
		return nil, err
	}

	metrics.RecordComputation(orgID, metrics.OutcomeOK, len(users), time.Since(start))
	span.SetAttributes(
		attribute.Int("cohort.size", len(users)),
		attribute.Bool("cohort.minimum_met", result.MinimumCohortMet),
	)
	if outputJSON, err := json.Marshal(map[string]any{
		"cohort_size":        len(users),
		"minimum_cohort_met": result.MinimumCohortMet,
		"roi":                result.ROI,
	}); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}
	if !result.MinimumCohortMet {
		logging.Ctx(ctx).Info().Str("org_id", orgID).Int("cohort_size", len(users)).
			Msg("cohort below privacy threshold; display and export are gated")
	}
	return result, nil
}

func (s *analyticsService) GetAllOrganizationsAnalytics(ctx context.Context) ([]domain.OrganizationAnalytics, error) {
	orgs, err := s.orgRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*domain.OrganizationAnalytics, len(orgs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentOrgs)
	for i := range orgs {
		i := i
		g.Go(func() error {
			a, err := s.GetOrganizationAnalytics(gctx, orgs[i].OrgID)
			if errors.Is(err, domain.ErrInsufficientData) {
				logging.Ctx(ctx).Warn().Str("org_id", orgs[i].OrgID).Msg("skipping organization without enrolled users")
				return nil
			}
			if err != nil {
				return err
			}
			results[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]domain.OrganizationAnalytics, 0, len(results))
	for _, a := range results {
		if a != nil {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *analyticsService) Preview(ctx context.Context, req *domain.PreviewRequest) (*domain.OrganizationAnalytics, error) {
	start := time.Now()
	result, err := s.compute(ctx, req.Organization, req.Users)
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = outcomeFor(err)
	}
	metrics.RecordComputation("preview", outcome, len(req.Users), time.Since(start))
	return result, err
}

func (s *analyticsService) compute(ctx context.Context, org domain.Organization, users []domain.User) (*domain.OrganizationAnalytics, error) {
	result, err := analytics.Compute(org, users, s.now())
	if err != nil {
		return nil, err
	}
	if replaced := analytics.Sanitize(result); len(replaced) > 0 {
		metrics.SanitizedFieldsTotal.Add(float64(len(replaced)))
		logging.Ctx(ctx).Warn().Str("org_id", org.OrgID).Strs("fields", replaced).
			Msg("non-finite analytics values replaced with 0")
	}
	return result, nil
}

func (s *analyticsService) fail(span trace.Span, orgID string, err error, cohortSize int, start time.Time) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	metrics.RecordComputation(orgID, outcomeFor(err), cohortSize, time.Since(start))
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, domain.ErrInsufficientData):
		return metrics.OutcomeInsufficientData
	default:
		return metrics.OutcomeError
	}
}

func (s *analyticsService) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	return s.orgRepo.List(ctx)
}

func (s *analyticsService) GetOrganization(ctx context.Context, orgID string) (*domain.Organization, error) {
	return s.orgRepo.GetByID(ctx, orgID)
}

func (s *analyticsService) DatasetStats(ctx context.Context) (*domain.DatasetStats, error) {
	orgs, err := s.orgRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.userRepo.CountByOrg(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.DatasetStats{
		TotalOrganizations: len(orgs),
		UsersByOrg:         make([]domain.OrgUserCount, 0, len(orgs)),
	}
	for _, org := range orgs {
		n := counts[org.OrgID]
		stats.TotalUsers += n
		stats.UsersByOrg = append(stats.UsersByOrg, domain.OrgUserCount{OrgID: org.OrgID, Name: org.Name, UserCount: n})
	}
	return stats, nil
}
