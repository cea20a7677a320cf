package analysis

import (
	"time"

	"logsense/internal/memory"
	"logsense/internal/model"
)

// ContextHints are the optional caller-supplied routing hints.
type ContextHints struct {
	Complexity        model.Complexity
	RequiresReasoning bool
	RequiresSpeed     bool
}

// AnalyzeInput is the input for AnalyzeLogs and AnalyzeCode.
type AnalyzeInput struct {
	Text     string
	Language string
	Hints    ContextHints
}

// Usage is the token consumption reported by the upstream call.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// AnalyzeOutput is the result of a completed analysis.
type AnalyzeOutput struct {
	ID        string
	TaskType  model.TaskType
	Severity  model.Severity
	Model     string
	Analysis  string
	Usage     Usage
	CreatedAt time.Time
}

// ClassifyInput is the input for the dry-run Classify operation.
type ClassifyInput struct {
	Text     string
	Language string
	Hints    ContextHints
}

// ClassifyOutput reports classification and routing without calling
// upstream.
type ClassifyOutput struct {
	TaskType   model.TaskType
	Severity   model.Severity
	Model      string
	TextLength int
}

// HistoryOutput bundles recent analyses with aggregate stats.
type HistoryOutput struct {
	Items []memory.Entry
	Stats memory.Stats
}

// CatalogOutput exposes the static routing tables.
type CatalogOutput struct {
	TaskModels        map[model.TaskType]model.ModelDescriptor
	LanguageModels    map[string]model.ModelDescriptor
	LongTextThreshold int
}
