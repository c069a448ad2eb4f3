package http

import (
	"github.com/gin-gonic/gin"

	"minwon-analytics/internal/analysis"
	pkgLog "minwon-analytics/pkg/log"
)

// Handler is the public interface for the analysis HTTP delivery layer.
type Handler interface {
	Analyze(c *gin.Context)
	Interpret(c *gin.Context)
}

type handler struct {
	l              pkgLog.Logger
	uc             analysis.UseCase
	maxQueryLength int
}

// New creates a new HTTP handler for the analysis domain.
func New(l pkgLog.Logger, uc analysis.UseCase, maxQueryLength int) Handler {
	if maxQueryLength <= 0 {
		maxQueryLength = defaultMaxQueryLength
	}
	return &handler{
		l:              l,
		uc:             uc,
		maxQueryLength: maxQueryLength,
	}
}
