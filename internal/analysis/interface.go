package analysis

import (
	"context"

	"logsense/internal/memory"
)

// UseCase is the analysis domain's business logic surface.
type UseCase interface {
	// AnalyzeLogs classifies a log excerpt, selects a model, and forwards
	// both to OpenRouter for analysis.
	AnalyzeLogs(ctx context.Context, in AnalyzeInput) (AnalyzeOutput, error)

	// AnalyzeCode is AnalyzeLogs with a code-oriented prompt and an
	// explicit language hint.
	AnalyzeCode(ctx context.Context, in AnalyzeInput) (AnalyzeOutput, error)

	// Classify runs classification and routing only; no upstream call.
	Classify(ctx context.Context, in ClassifyInput) (ClassifyOutput, error)

	// History returns recent analyses, newest first.
	History(ctx context.Context, limit int) (HistoryOutput, error)

	// Detail returns a single recorded analysis by id.
	Detail(ctx context.Context, id string) (memory.Entry, error)

	// Models returns the static routing tables.
	Models(ctx context.Context) (CatalogOutput, error)
}
