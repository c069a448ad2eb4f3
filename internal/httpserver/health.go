package httpserver

import (
	"github.com/gin-gonic/gin"

	"minwon-analytics/pkg/response"
)

// Service identity reported by the probe endpoints.
const (
	ServiceName    = "minwon-analytics"
	ServiceVersion = "1.0.0"
)

type probeResp struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func probe(status string) gin.HandlerFunc {
	body := probeResp{Status: status, Service: ServiceName, Version: ServiceVersion}
	return func(c *gin.Context) {
		response.OK(c, body)
	}
}

// healthCheck godoc
// @Summary Health Check
// @Tags    Health
// @Produce json
// @Success 200 {object} probeResp
// @Router  /health [get]
func (srv HTTPServer) healthCheck() gin.HandlerFunc { return probe("healthy") }

// liveCheck godoc
// @Summary Liveness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} probeResp
// @Router  /live [get]
func (srv HTTPServer) liveCheck() gin.HandlerFunc { return probe("alive") }

// readyCheck godoc
// @Summary Readiness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} probeResp
// @Router  /ready [get]
func (srv HTTPServer) readyCheck() gin.HandlerFunc { return probe("ready") }
