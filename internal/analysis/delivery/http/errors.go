package http

import (
	"errors"
	"net/http"

	"minwon-analytics/internal/analysis"
	pkgErrors "minwon-analytics/pkg/errors"
)

var errQueryRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "query is required")

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Upstream data failures are 502, summarizer failures 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrEmptyQuery):
		return errQueryRequired
	case errors.Is(err, analysis.ErrQueryTooLong):
		return pkgErrors.NewHTTPErrorf(http.StatusBadRequest, "query must be at most %d characters", h.maxQueryLength)
	case errors.Is(err, analysis.ErrAggregation):
		return pkgErrors.NewHTTPErrorf(http.StatusBadGateway, "공공 API 오류: %v", err)
	case errors.Is(err, analysis.ErrSummarization):
		return pkgErrors.NewHTTPErrorf(http.StatusInternalServerError, "LLM 추론 오류: %v", err)
	default:
		return pkgErrors.ErrInternalServerError
	}
}
