package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	an := rg.Group("/analysis")
	{
		an.POST("/logs", h.AnalyzeLogs)
		an.POST("/code", h.AnalyzeCode)
		an.GET("/history", h.History)
		an.GET("/history/:id", h.HistoryDetail)
	}

	rg.POST("/classify", h.Classify)
	rg.GET("/models", h.Models)
}
