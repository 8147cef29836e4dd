package service

import (
	"context"
	"errors"
	"testing"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/blaisecz/wellness-outcomes/internal/llm"
)

func newInsightsFixture(cohortSize int, llmClient llm.InsightsLLM, lf *mockLangfuseClient) InsightsService {
	orgRepo := NewMockOrganizationRepository(testOrganization("org-a"))
	userRepo := NewMockUserRepository()
	userRepo.Add(testUsers("org-a", cohortSize)...)
	return NewInsightsService(newTestAnalyticsService(orgRepo, userRepo), llmClient, lf)
}

func sampleNarrative() *domain.LLMInsightsOutput {
	return &domain.LLMInsightsOutput{
		Summary:         "Depression scores fell sharply across the cohort.",
		Observations:    []string{"All participants improved on PHQ-9."},
		Recommendations: []string{"Expand video sessions."},
	}
}

func TestInsightsService_Generate(t *testing.T) {
	model := &mockLLM{output: sampleNarrative()}
	lf := &mockLangfuseClient{enabled: true}
	svc := newInsightsFixture(5, model, lf)

	resp, err := svc.Generate(context.Background(), "org-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Narrative == nil || resp.Narrative.Summary != sampleNarrative().Summary {
		t.Errorf("expected narrative from model, got %+v", resp.Narrative)
	}
	if len(resp.Highlights) != 7 {
		t.Errorf("expected 7 highlights, got %d", len(resp.Highlights))
	}
	if resp.TraceID != "trace-generated" {
		t.Errorf("expected trace id from langfuse, got %q", resp.TraceID)
	}
	if model.got == nil || model.got.Organization.OrgID != "org-a" {
		t.Error("expected aggregate context to be sent to the model")
	}
	if len(lf.traces) != 1 || lf.traces[0].OrgID != "org-a" {
		t.Errorf("expected one trace grouped by organization, got %+v", lf.traces)
	}
}

func TestInsightsService_Generate_LangfuseDisabled(t *testing.T) {
	lf := &mockLangfuseClient{enabled: false}
	svc := newInsightsFixture(5, &mockLLM{output: sampleNarrative()}, lf)

	resp, err := svc.Generate(context.Background(), "org-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.TraceID != "" {
		t.Error("expected trace id to be omitted when Langfuse is disabled")
	}
	if len(lf.traces) != 0 {
		t.Error("expected no traces when Langfuse is disabled")
	}
}

func TestInsightsService_Generate_TraceFailureIsNotFatal(t *testing.T) {
	lf := &mockLangfuseClient{enabled: true, traceErr: errors.New("503")}
	svc := newInsightsFixture(5, &mockLLM{output: sampleNarrative()}, lf)

	resp, err := svc.Generate(context.Background(), "org-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Narrative == nil {
		t.Error("expected narrative despite trace failure")
	}
}

func TestInsightsService_Generate_Errors(t *testing.T) {
	var unconfigured *llm.OpenAIClient

	tests := []struct {
		name       string
		cohortSize int
		orgID      string
		model      llm.InsightsLLM
		wantErr    error
	}{
		{name: "below privacy threshold", cohortSize: 4, orgID: "org-a", model: &mockLLM{output: sampleNarrative()}, wantErr: domain.ErrCohortTooSmall},
		{name: "unknown organization", cohortSize: 5, orgID: "org-x", model: &mockLLM{output: sampleNarrative()}, wantErr: domain.ErrNotFound},
		{name: "no model", cohortSize: 5, orgID: "org-a", model: nil, wantErr: llm.ErrOpenAIUnavailable},
		{name: "unconfigured openai client", cohortSize: 5, orgID: "org-a", model: unconfigured, wantErr: llm.ErrOpenAIUnavailable},
		{name: "model request fails", cohortSize: 5, orgID: "org-a", model: &mockLLM{err: llm.ErrOpenAIRequest}, wantErr: llm.ErrOpenAIRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newInsightsFixture(tt.cohortSize, tt.model, &mockLangfuseClient{enabled: true})

			resp, err := svc.Generate(context.Background(), tt.orgID)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
			if resp != nil {
				t.Error("expected nil response on error")
			}
		})
	}
}

func TestInsightsService_Highlights(t *testing.T) {
	svc := newInsightsFixture(5, nil, &mockLangfuseClient{})

	resp, err := svc.Highlights(context.Background(), "org-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Narrative != nil {
		t.Error("expected no narrative")
	}
	if resp.Highlights[0].Label != "Enrolled" || resp.Highlights[0].Value != "5" {
		t.Errorf("unexpected first highlight: %+v", resp.Highlights[0])
	}

	small := newInsightsFixture(2, nil, &mockLangfuseClient{})
	if _, err := small.Highlights(context.Background(), "org-a"); !errors.Is(err, domain.ErrCohortTooSmall) {
		t.Errorf("expected ErrCohortTooSmall, got %v", err)
	}
}

func TestInsightsService_SubmitFeedback(t *testing.T) {
	tests := []struct {
		name       string
		orgID      string
		traceID    string
		score      int
		scoreErr   error
		wantErr    error
		wantScores int
	}{
		{name: "valid", orgID: "org-a", traceID: "t-1", score: 4, wantScores: 1},
		{name: "delivery failure accepted", orgID: "org-a", traceID: "t-1", score: 5, scoreErr: errors.New("down"), wantScores: 1},
		{name: "missing trace", orgID: "org-a", score: 3, wantErr: domain.ErrInvalidInput},
		{name: "score too low", orgID: "org-a", traceID: "t-1", score: 0, wantErr: domain.ErrInvalidInput},
		{name: "score too high", orgID: "org-a", traceID: "t-1", score: 6, wantErr: domain.ErrInvalidInput},
		{name: "unknown organization", orgID: "org-x", traceID: "t-1", score: 3, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lf := &mockLangfuseClient{enabled: true, scoreErr: tt.scoreErr}
			svc := newInsightsFixture(5, nil, lf)

			err := svc.SubmitFeedback(context.Background(), tt.orgID, tt.traceID, tt.score, "useful")
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
			if len(lf.scores) != tt.wantScores {
				t.Errorf("expected %d scores, got %d", tt.wantScores, len(lf.scores))
			}
			if tt.wantScores == 1 && lf.scores[0].Value != float64(tt.score) {
				t.Errorf("expected score value %d, got %v", tt.score, lf.scores[0].Value)
			}
		})
	}
}
