package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/blaisecz/wellness-outcomes/internal/report"
	"github.com/blaisecz/wellness-outcomes/internal/service"
	"github.com/blaisecz/wellness-outcomes/pkg/problem"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	service service.AnalyticsService
	now     func() time.Time
}

func NewReportHandler(service service.AnalyticsService) *ReportHandler {
	return &ReportHandler{service: service, now: time.Now}
}

// HTML handles GET /api/reports/{orgId}/html
// @Summary Executive report (HTML)
// @Description Printable executive outcomes report. Refused when the cohort is below the privacy threshold.
// @Tags reports
// @Produce html
// @Param orgId path string true "Organization ID" example(org-techcorp)
// @Success 200 {string} string "HTML document"
// @Failure 400 {object} problem.Problem "Minimum cohort size not met"
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /reports/{orgId}/html [get]
func (h *ReportHandler) HTML(w http.ResponseWriter, r *http.Request) {
	a, ok := h.exportable(w, r)
	if !ok {
		return
	}

	body, err := report.RenderHTML(a)
	if err != nil {
		writeError(w, r, err, "Failed to generate report")
		return
	}
	h.attach(w, "text/html; charset=utf-8", report.Filename(a, "html", h.now()), body)
}

// XLSX handles GET /api/reports/{orgId}/xlsx
// @Summary Executive report (XLSX)
// @Description Spreadsheet with summary, clinical, productivity/ROI and weekly trend sheets. Refused when the cohort is below the privacy threshold.
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param orgId path string true "Organization ID" example(org-techcorp)
// @Success 200 {file} file "XLSX workbook"
// @Failure 400 {object} problem.Problem "Minimum cohort size not met"
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /reports/{orgId}/xlsx [get]
func (h *ReportHandler) XLSX(w http.ResponseWriter, r *http.Request) {
	a, ok := h.exportable(w, r)
	if !ok {
		return
	}

	body, err := report.RenderXLSX(a)
	if err != nil {
		writeError(w, r, err, "Failed to generate report")
		return
	}
	h.attach(w, xlsxContentType, report.Filename(a, "xlsx", h.now()), body)
}

func (h *ReportHandler) exportable(w http.ResponseWriter, r *http.Request) (*domain.OrganizationAnalytics, bool) {
	a, err := h.service.GetOrganizationAnalytics(r.Context(), chi.URLParam(r, "orgId"))
	if err != nil {
		writeError(w, r, err, "Failed to generate report")
		return nil, false
	}
	if !a.MinimumCohortMet {
		problem.CohortTooSmall(msgCohortTooSmall).Write(w)
		return nil, false
	}
	return a, true
}

func (h *ReportHandler) attach(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
