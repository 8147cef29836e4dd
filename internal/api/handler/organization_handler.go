package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/blaisecz/wellness-outcomes/internal/service"
	"github.com/blaisecz/wellness-outcomes/pkg/pagination"
	"github.com/blaisecz/wellness-outcomes/pkg/problem"
	"github.com/blaisecz/wellness-outcomes/pkg/response"
	"github.com/go-chi/chi/v5"
)

type OrganizationHandler struct {
	service service.AnalyticsService
}

func NewOrganizationHandler(service service.AnalyticsService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// List handles GET /api/organizations
// @Summary List organizations
// @Description List every organization in provider order. Passing limit or cursor returns a page instead of the full list.
// @Tags organizations
// @Produce json
// @Param limit query integer false "Page size" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} response.Envelope{data=[]domain.Organization}
// @Failure 400 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /organizations [get]
func (h *OrganizationHandler) List(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.service.ListOrganizations(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to fetch organizations")
		return
	}

	q := r.URL.Query()
	if !q.Has("limit") && !q.Has("cursor") {
		response.OK(w, orgs)
		return
	}

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			problem.BadRequest("limit must be a positive integer").Write(w)
			return
		}
	}
	cursor, err := pagination.DecodeCursor(q.Get("cursor"))
	if err != nil {
		problem.BadRequest("Invalid cursor").Write(w)
		return
	}

	page, err := pagination.Paginate(orgs, func(o domain.Organization) string { return o.OrgID }, cursor, limit)
	if errors.Is(err, pagination.ErrInvalidCursor) {
		problem.BadRequest("Invalid cursor").Write(w)
		return
	}
	response.OK(w, page)
}

// GetByID handles GET /api/organizations/{orgId}
// @Summary Get organization
// @Tags organizations
// @Produce json
// @Param orgId path string true "Organization ID" example(org-techcorp)
// @Success 200 {object} response.Envelope{data=domain.Organization}
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /organizations/{orgId} [get]
func (h *OrganizationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	org, err := h.service.GetOrganization(r.Context(), chi.URLParam(r, "orgId"))
	if err != nil {
		writeError(w, r, err, "Failed to fetch organization")
		return
	}
	response.OK(w, org)
}
