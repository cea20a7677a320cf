package http

import (
	"github.com/gin-gonic/gin"
)

// processAnalyzeReq binds and validates the analyze request body.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processClassifyReq binds and validates the classify request body.
func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processHistoryReq binds the history query parameters.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
