package http

import (
	"github.com/gin-gonic/gin"

	"logsense/internal/analysis"
	"logsense/pkg/log"
)

// Handler is the public interface for the analysis HTTP delivery layer.
type Handler interface {
	AnalyzeLogs(c *gin.Context)
	AnalyzeCode(c *gin.Context)
	Classify(c *gin.Context)
	Models(c *gin.Context)
	History(c *gin.Context)
	HistoryDetail(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc analysis.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the analysis domain.
func New(l log.Logger, uc analysis.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
