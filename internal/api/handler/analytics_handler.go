package handler

import (
	"net/http"

	"github.com/blaisecz/wellness-outcomes/internal/api/validation"
	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/blaisecz/wellness-outcomes/internal/service"
	"github.com/blaisecz/wellness-outcomes/pkg/problem"
	"github.com/blaisecz/wellness-outcomes/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// maxPreviewBodyBytes bounds ad-hoc cohort uploads.
const maxPreviewBodyBytes = 10 << 20

type AnalyticsHandler struct {
	service service.AnalyticsService
}

func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetAll handles GET /api/analytics
// @Summary Analytics for all organizations
// @Description Compute analytics for every organization with enrolled users, in provider order.
// @Tags analytics
// @Produce json
// @Success 200 {object} response.Envelope{data=[]domain.OrganizationAnalytics}
// @Failure 500 {object} problem.Problem
// @Router /analytics [get]
func (h *AnalyticsHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.GetAllOrganizationsAnalytics(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to compute analytics")
		return
	}
	response.OK(w, results)
}

// GetByOrg handles GET /api/analytics/{orgId}
// @Summary Analytics for one organization
// @Description Clinical, productivity, engagement, ROI and weekly trend statistics. minimumCohortMet tells clients whether the result may be displayed.
// @Tags analytics
// @Produce json
// @Param orgId path string true "Organization ID" example(org-techcorp)
// @Success 200 {object} response.Envelope{data=domain.OrganizationAnalytics}
// @Failure 404 {object} problem.Problem "Organization not found"
// @Failure 422 {object} problem.Problem "Organization has no enrolled users"
// @Failure 500 {object} problem.Problem
// @Router /analytics/{orgId} [get]
func (h *AnalyticsHandler) GetByOrg(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetOrganizationAnalytics(r.Context(), chi.URLParam(r, "orgId"))
	if err != nil {
		writeError(w, r, err, "Failed to compute analytics")
		return
	}
	response.OK(w, result)
}

// Preview handles POST /api/analytics/preview
// @Summary Analyse an ad-hoc cohort
// @Description Compute analytics for an organization profile and cohort supplied in the request body. Nothing is stored.
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body domain.PreviewRequest true "Organization and cohort"
// @Success 200 {object} response.Envelope{data=domain.OrganizationAnalytics}
// @Failure 400 {object} problem.Problem "Malformed JSON"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 500 {object} problem.Problem
// @Router /analytics/preview [post]
func (h *AnalyticsHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req domain.PreviewRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPreviewBodyBytes)).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	for i := range req.Users {
		if req.Users[i].OrgID != req.Organization.OrgID {
			problem.ValidationError("Request body contains invalid fields", []problem.FieldError{
				{Field: "users.orgId", Message: "must match organization.orgId"},
			}).Write(w)
			return
		}
	}

	result, err := h.service.Preview(r.Context(), &req)
	if err != nil {
		writeError(w, r, err, "Failed to compute analytics")
		return
	}
	response.OK(w, result)
}

// Stats handles GET /api/debug/stats
// @Summary Dataset statistics
// @Tags debug
// @Produce json
// @Success 200 {object} response.Envelope{data=domain.DatasetStats}
// @Failure 500 {object} problem.Problem
// @Router /debug/stats [get]
func (h *AnalyticsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.DatasetStats(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to fetch stats")
		return
	}
	response.OK(w, stats)
}
