package service

import (
	"context"
	"fmt"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/blaisecz/wellness-outcomes/internal/langfuse"
	"github.com/blaisecz/wellness-outcomes/internal/llm"
	"github.com/blaisecz/wellness-outcomes/internal/logging"
	"github.com/blaisecz/wellness-outcomes/internal/report"
	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	insightsTraceName = "wellness-insights"
	feedbackScoreName = "user_rating"

	MinFeedbackScore = 1
	MaxFeedbackScore = 5
)

// InsightsService produces executive highlights and the LLM narrative.
type InsightsService interface {
	// Highlights returns the deterministic headline figures for an organization.
	Highlights(ctx context.Context, orgID string) (*domain.InsightsResponse, error)
	// Generate returns the highlights plus an LLM narrative. Returns
	// domain.ErrCohortTooSmall below the privacy threshold and
	// llm.ErrOpenAIUnavailable when no model is configured.
	Generate(ctx context.Context, orgID string) (*domain.InsightsResponse, error)
	// SubmitFeedback records a 1-5 rating for a narrative trace.
	SubmitFeedback(ctx context.Context, orgID, traceID string, score int, comment string) error
}

type insightsService struct {
	analytics      AnalyticsService
	llmClient      llm.InsightsLLM
	langfuseClient langfuse.Client
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(analytics AnalyticsService, llmClient llm.InsightsLLM, langfuseClient langfuse.Client) InsightsService {
	return &insightsService{
		analytics:      analytics,
		llmClient:      llmClient,
		langfuseClient: langfuseClient,
	}
}

func (s *insightsService) Highlights(ctx context.Context, orgID string) (*domain.InsightsResponse, error) {
	a, err := s.gatedAnalytics(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return &domain.InsightsResponse{OrgID: orgID, Highlights: report.Highlights(a)}, nil
}

func (s *insightsService) Generate(ctx context.Context, orgID string) (*domain.InsightsResponse, error) {
	tracer := otel.Tracer("wellness-outcomes/insights")
	ctx, span := tracer.Start(ctx, "InsightsService.Generate",
		trace.WithAttributes(attribute.String("org.id", orgID)),
	)
	defer span.End()

	a, err := s.gatedAnalytics(ctx, orgID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	// Only aggregates leave the process.
	insightsCtx := &domain.InsightsContext{
		Organization: a.Organization,
		Clinical:     a.Clinical,
		Productivity: a.Productivity,
		Engagement:   a.Engagement,
		ROI:          a.ROI,
	}
	if inputJSON, err := json.Marshal(insightsCtx); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	if s.llmClient == nil {
		err = llm.ErrOpenAIUnavailable
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	narrative, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if outputJSON, err := json.Marshal(narrative); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	resp := &domain.InsightsResponse{
		OrgID:      orgID,
		Highlights: report.Highlights(a),
		Narrative:  narrative,
	}

	if s.langfuseClient.IsEnabled() {
		traceID := ""
		if sc := span.SpanContext(); sc.IsValid() {
			traceID = sc.TraceID().String()
		}
		id, err := s.langfuseClient.CreateTrace(ctx, langfuse.TraceInput{
			ID:     traceID,
			OrgID:  orgID,
			Name:   insightsTraceName,
			Input:  insightsCtx,
			Output: narrative,
			Tags:   []string{"insights", a.Organization.Industry},
		})
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("org_id", orgID).Msg("failed to record insights trace")
		}
		resp.TraceID = id
	}
	return resp, nil
}

func (s *insightsService) SubmitFeedback(ctx context.Context, orgID, traceID string, score int, comment string) error {
	if traceID == "" {
		return fmt.Errorf("%w: traceId is required", domain.ErrInvalidInput)
	}
	if score < MinFeedbackScore || score > MaxFeedbackScore {
		return fmt.Errorf("%w: score must be between %d and %d", domain.ErrInvalidInput, MinFeedbackScore, MaxFeedbackScore)
	}
	if _, err := s.analytics.GetOrganization(ctx, orgID); err != nil {
		return err
	}

	// Feedback is accepted even when the score cannot be delivered.
	if err := s.langfuseClient.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: traceID,
		Name:    feedbackScoreName,
		Value:   float64(score),
		Comment: comment,
	}); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("trace_id", traceID).Msg("failed to record insights feedback")
	}
	return nil
}

func (s *insightsService) gatedAnalytics(ctx context.Context, orgID string) (*domain.OrganizationAnalytics, error) {
	a, err := s.analytics.GetOrganizationAnalytics(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if !a.MinimumCohortMet {
		return nil, domain.ErrCohortTooSmall
	}
	return a, nil
}
