package usecase

import (
	"logsense/internal/analysis"
	"logsense/internal/classifier"
	"logsense/internal/memory"
	"logsense/internal/modelrouter"
	"logsense/pkg/log"
	"logsense/pkg/openrouter"
)

type implUseCase struct {
	l      log.Logger
	cls    *classifier.Classifier
	router *modelrouter.Router
	llm    openrouter.IOpenRouter // nil when no API key is configured
	mem    *memory.Store
}

var _ analysis.UseCase = (*implUseCase)(nil)

// New creates the analysis use case. llm may be nil; analyze operations
// then fail with ErrNotConfigured while classification keeps working.
func New(l log.Logger, cls *classifier.Classifier, router *modelrouter.Router, llm openrouter.IOpenRouter, mem *memory.Store) *implUseCase {
	return &implUseCase{
		l:      l,
		cls:    cls,
		router: router,
		llm:    llm,
		mem:    mem,
	}
}
