package http

import (
	"time"

	"logsense/internal/analysis"
	"logsense/internal/memory"
	"logsense/internal/model"
)

// --- Request DTOs ---

type contextReq struct {
	Complexity        string `json:"complexity" binding:"omitempty,oneof=low medium high"`
	RequiresReasoning bool   `json:"requires_reasoning"`
	RequiresSpeed     bool   `json:"requires_speed"`
}

func (r *contextReq) toHints() analysis.ContextHints {
	if r == nil {
		return analysis.ContextHints{}
	}
	return analysis.ContextHints{
		Complexity:        model.Complexity(r.Complexity),
		RequiresReasoning: r.RequiresReasoning,
		RequiresSpeed:     r.RequiresSpeed,
	}
}

type analyzeReq struct {
	Text     string      `json:"text" binding:"required"`
	Language string      `json:"language"`
	Context  *contextReq `json:"context"`
}

func (r analyzeReq) toInput() analysis.AnalyzeInput {
	return analysis.AnalyzeInput{
		Text:     r.Text,
		Language: r.Language,
		Hints:    r.Context.toHints(),
	}
}

type classifyReq struct {
	Text     string      `json:"text" binding:"required"`
	Language string      `json:"language"`
	Context  *contextReq `json:"context"`
}

func (r classifyReq) toInput() analysis.ClassifyInput {
	return analysis.ClassifyInput{
		Text:     r.Text,
		Language: r.Language,
		Hints:    r.Context.toHints(),
	}
}

type historyReq struct {
	Limit int `form:"limit"`
}

func (r historyReq) limit() int {
	switch {
	case r.Limit <= 0:
		return 20
	case r.Limit > 100:
		return 100
	default:
		return r.Limit
	}
}

// --- Response DTOs ---

type usageResp struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type analyzeResp struct {
	ID        string    `json:"id"`
	TaskType  string    `json:"task_type"`
	Severity  string    `json:"severity"`
	Model     string    `json:"model"`
	Analysis  string    `json:"analysis"`
	Usage     usageResp `json:"usage"`
	CreatedAt time.Time `json:"created_at"`
}

func newAnalyzeResp(out analysis.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		ID:       out.ID,
		TaskType: string(out.TaskType),
		Severity: string(out.Severity),
		Model:    out.Model,
		Analysis: out.Analysis,
		Usage: usageResp{
			PromptTokens:     out.Usage.PromptTokens,
			CompletionTokens: out.Usage.CompletionTokens,
			TotalTokens:      out.Usage.TotalTokens,
		},
		CreatedAt: out.CreatedAt,
	}
}

type classifyResp struct {
	TaskType   string `json:"task_type"`
	Severity   string `json:"severity"`
	Model      string `json:"model"`
	TextLength int    `json:"text_length"`
}

func newClassifyResp(out analysis.ClassifyOutput) classifyResp {
	return classifyResp{
		TaskType:   string(out.TaskType),
		Severity:   string(out.Severity),
		Model:      out.Model,
		TextLength: out.TextLength,
	}
}

type historyResp struct {
	Items []memory.Entry `json:"items"`
	Stats memory.Stats   `json:"stats"`
}

func newHistoryResp(out analysis.HistoryOutput) historyResp {
	items := out.Items
	if items == nil {
		items = []memory.Entry{}
	}
	return historyResp{Items: items, Stats: out.Stats}
}

type modelsResp struct {
	TaskModels        map[model.TaskType]model.ModelDescriptor `json:"task_models"`
	LanguageModels    map[string]model.ModelDescriptor         `json:"language_models"`
	LongTextThreshold int                                      `json:"long_text_threshold"`
}

func newModelsResp(out analysis.CatalogOutput) modelsResp {
	return modelsResp{
		TaskModels:        out.TaskModels,
		LanguageModels:    out.LanguageModels,
		LongTextThreshold: out.LongTextThreshold,
	}
}
