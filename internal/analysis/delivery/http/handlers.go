package http

import (
	"github.com/gin-gonic/gin"

	"minwon-analytics/pkg/response"
)

// Analyze godoc
// @Summary     Analyze complaint statistics
// @Description Interprets a free-text question, gathers complaint statistics from the public Open API and summarizes them.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Analysis question (1..500 characters)"
// @Success     200  {object} analyzeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "LLM failure"
// @Failure     502  {object} response.Resp "Public API failure"
// @Router      /api/v1/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// Interpret godoc
// @Summary     Interpret a question
// @Description Returns the structured intent a question would be analyzed with. No upstream calls are made.
// @Tags        Analysis
// @Produce     json
// @Param       query query string true "Analysis question"
// @Success     200 {object} intentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/analyze/intent [GET]
func (h *handler) Interpret(c *gin.Context) {
	query, err := h.processInterpretReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newIntentResp(h.uc.Interpret(query)))
}
