package http

import (
	"github.com/gin-gonic/gin"

	"logsense/pkg/response"
)

// AnalyzeLogs godoc
// @Summary     Analyze a log excerpt
// @Description Classifies the text, selects a model, and forwards it to OpenRouter for analysis.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Log text with optional routing hints"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Upstream failure"
// @Router      /api/v1/analysis/logs [POST]
func (h *handler) AnalyzeLogs(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AnalyzeLogs(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AnalyzeLogs: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAnalyzeResp(output))
}

// AnalyzeCode godoc
// @Summary     Analyze a code snippet
// @Description Same pipeline as log analysis, with a code-oriented prompt and language hint.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Code with optional language and routing hints"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Upstream failure"
// @Router      /api/v1/analysis/code [POST]
func (h *handler) AnalyzeCode(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AnalyzeCode(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AnalyzeCode: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAnalyzeResp(output))
}

// Classify godoc
// @Summary     Classify text without calling upstream
// @Description Returns the task type, severity guess, and the model the router would pick.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Text with optional routing hints"
// @Success     200 {object} classifyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Classify(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Classify: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newClassifyResp(output))
}

// Models godoc
// @Summary     List the model routing tables
// @Description Static task-type and language tables plus the long-text threshold.
// @Tags        Analysis
// @Produce     json
// @Success     200 {object} modelsResp
// @Router      /api/v1/models [GET]
func (h *handler) Models(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Models(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Models: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newModelsResp(output))
}

// History godoc
// @Summary     List recent analyses
// @Description Returns recent analyses, newest first, with aggregate stats.
// @Tags        Analysis
// @Produce     json
// @Param       limit query int false "Page size (default 20, max 100)"
// @Success     200 {object} historyResp
// @Router      /api/v1/analysis/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.History(ctx, req.limit())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newHistoryResp(output))
}

// HistoryDetail godoc
// @Summary     Get one recorded analysis
// @Tags        Analysis
// @Produce     json
// @Param       id path string true "Analysis ID"
// @Success     200 {object} memory.Entry
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/analysis/history/{id} [GET]
func (h *handler) HistoryDetail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	entry, err := h.uc.Detail(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, entry)
}
