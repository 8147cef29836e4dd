package handler

import (
	"errors"
	"net/http"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/blaisecz/wellness-outcomes/internal/llm"
	"github.com/blaisecz/wellness-outcomes/internal/logging"
	"github.com/blaisecz/wellness-outcomes/pkg/problem"
)

const (
	msgOrgNotFound    = "Organization not found"
	msgCohortTooSmall = "Minimum cohort size not met for privacy compliance"
)

// writeError maps service errors to problem responses. Unrecognised errors are
// logged and reported with the opaque fallback message.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound(msgOrgNotFound).Write(w)
	case errors.Is(err, domain.ErrInsufficientData):
		problem.InsufficientData("Organization has no enrolled users").Write(w)
	case errors.Is(err, domain.ErrCohortTooSmall):
		problem.CohortTooSmall(msgCohortTooSmall).Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(err.Error()).Write(w)
	case errors.Is(err, llm.ErrOpenAIUnavailable):
		problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
	case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
		logging.Ctx(r.Context()).Warn().Err(err).Msg("llm call failed")
		problem.BadGateway("Failed to generate insights from LLM").Write(w)
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg(fallback)
		problem.InternalError(fallback).Write(w)
	}
}
