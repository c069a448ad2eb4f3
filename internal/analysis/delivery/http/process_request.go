package http

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	pkgErrors "minwon-analytics/pkg/errors"
)

// processAnalyzeReq binds and validates the analyze request body.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPErrorf(http.StatusBadRequest, "invalid request body: %v", err)
	}
	return req, h.validateQuery(req.Query)
}

// processInterpretReq reads the query parameter of the interpret request.
func (h *handler) processInterpretReq(c *gin.Context) (string, error) {
	query := c.Query("query")
	return query, h.validateQuery(query)
}

func (h *handler) validateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return errQueryRequired
	}
	if utf8.RuneCountInString(query) > h.maxQueryLength {
		return pkgErrors.NewHTTPErrorf(http.StatusBadRequest, "query must be at most %d characters", h.maxQueryLength)
	}
	return nil
}
