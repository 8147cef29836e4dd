package handler

import (
	"net/http"

	"github.com/blaisecz/wellness-outcomes/internal/service"
	"github.com/blaisecz/wellness-outcomes/pkg/problem"
	"github.com/blaisecz/wellness-outcomes/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// InsightsHandler handles executive insights endpoints.
type InsightsHandler struct {
	service service.InsightsService
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(service service.InsightsService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

// GetHighlights handles GET /api/analytics/{orgId}/highlights
// @Summary Executive highlights
// @Description Deterministic headline figures. Does not call the LLM.
// @Tags insights
// @Produce json
// @Param orgId path string true "Organization ID" example(org-techcorp)
// @Success 200 {object} response.Envelope{data=domain.InsightsResponse}
// @Failure 400 {object} problem.Problem "Minimum cohort size not met"
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /analytics/{orgId}/highlights [get]
func (h *InsightsHandler) GetHighlights(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Highlights(r.Context(), chi.URLParam(r, "orgId"))
	if err != nil {
		writeError(w, r, err, "Failed to compute highlights")
		return
	}
	response.OK(w, result)
}

// GetInsights handles GET /api/analytics/{orgId}/insights
// @Summary Executive insights with LLM narrative
// @Description Headline figures plus a narrative generated from aggregate outcomes only. traceId is set when feedback can be recorded.
// @Tags insights
// @Produce json
// @Param orgId path string true "Organization ID" example(org-techcorp)
// @Success 200 {object} response.Envelope{data=domain.InsightsResponse}
// @Failure 400 {object} problem.Problem "Minimum cohort size not met"
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /analytics/{orgId}/insights [get]
func (h *InsightsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Generate(r.Context(), chi.URLParam(r, "orgId"))
	if err != nil {
		writeError(w, r, err, "Failed to generate insights")
		return
	}
	response.OK(w, result)
}

// FeedbackRequest is the request body for insights feedback.
// @Description Request body for rating a generated narrative.
type FeedbackRequest struct {
	// Trace ID from the insights response
	TraceID string `json:"traceId" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"Clear and actionable."`
}

// PostFeedback handles POST /api/analytics/{orgId}/insights/feedback
// @Summary Rate an insights narrative
// @Tags insights
// @Accept json
// @Param orgId path string true "Organization ID" example(org-techcorp)
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /analytics/{orgId}/insights/feedback [post]
func (h *InsightsHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if err := h.service.SubmitFeedback(r.Context(), chi.URLParam(r, "orgId"), req.TraceID, req.Score, req.Comment); err != nil {
		writeError(w, r, err, "Failed to submit feedback")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
