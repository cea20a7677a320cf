package modelrouter

import (
	"logsense/internal/model"
)

// Catalog is the static model lookup state: one descriptor per TaskType,
// one per recognized language, plus the reasoning/fast/default specials.
// Built once at startup and never mutated, so concurrent reads need no lock.
type Catalog struct {
	taskModels     map[model.TaskType]model.ModelDescriptor
	languageModels map[string]model.ModelDescriptor
	reasoning      model.ModelDescriptor
	fast           model.ModelDescriptor
	fallback       model.ModelDescriptor
}

// Model descriptors. OpenRouter ids are opaque strings meaningful only to
// the upstream API.
var (
	descReasoning = model.ModelDescriptor{ID: "reasoning", Label: "Heavy reasoning", OpenRouterID: "deepseek/deepseek-r1"}
	descFast      = model.ModelDescriptor{ID: "fast", Label: "Fast responses", OpenRouterID: "openai/gpt-4o-mini"}
	descCoding    = model.ModelDescriptor{ID: "coding", Label: "Code specialist", OpenRouterID: "anthropic/claude-3.5-sonnet"}
	descDocs      = model.ModelDescriptor{ID: "docs", Label: "Documentation writer", OpenRouterID: "google/gemini-2.0-flash-001"}
	descChat      = model.ModelDescriptor{ID: "chat", Label: "General chat", OpenRouterID: "openai/gpt-4o"}
	descDefault   = model.ModelDescriptor{ID: "default", Label: "General purpose", OpenRouterID: "meta-llama/llama-3.3-70b-instruct"}
)

// NewCatalog builds the default catalog. The invariant: every TaskType in
// model.AllTaskTypes has exactly one entry, and a fallback entry always
// exists.
func NewCatalog() *Catalog {
	return &Catalog{
		taskModels: map[model.TaskType]model.ModelDescriptor{
			model.TaskTypeLogAnalysis:    descCoding,
			model.TaskTypeRootCause:      descReasoning,
			model.TaskTypeDebugging:      descCoding,
			model.TaskTypeRefactoring:    descCoding,
			model.TaskTypeCodeGeneration: descCoding,
			model.TaskTypeDocumentation:  descDocs,
			model.TaskTypeExplanation:    descChat,
			model.TaskTypeGeneral:        descDefault,
		},
		languageModels: map[string]model.ModelDescriptor{
			"go":         descCoding,
			"python":     descCoding,
			"rust":       descCoding,
			"java":       descChat,
			"javascript": descChat,
			"typescript": descChat,
			"sql":        descDocs,
		},
		reasoning: descReasoning,
		fast:      descFast,
		fallback:  descDefault,
	}
}

// TaskModels returns a copy of the TaskType table for presentation.
func (c *Catalog) TaskModels() map[model.TaskType]model.ModelDescriptor {
	out := make(map[model.TaskType]model.ModelDescriptor, len(c.taskModels))
	for k, v := range c.taskModels {
		out[k] = v
	}
	return out
}

// LanguageModels returns a copy of the language table for presentation.
func (c *Catalog) LanguageModels() map[string]model.ModelDescriptor {
	out := make(map[string]model.ModelDescriptor, len(c.languageModels))
	for k, v := range c.languageModels {
		out[k] = v
	}
	return out
}
