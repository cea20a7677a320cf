package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"logsense/internal/analysis"
	"logsense/internal/memory"
	"logsense/internal/model"
	"logsense/pkg/openrouter"
)

// AnalyzeLogs classifies the text, routes it to a model, and forwards both
// to OpenRouter.
func (uc *implUseCase) AnalyzeLogs(ctx context.Context, in analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	return uc.analyze(ctx, in, "")
}

// AnalyzeCode runs the same pipeline with a code-oriented system prompt.
func (uc *implUseCase) AnalyzeCode(ctx context.Context, in analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	prompt := codeAnalysisPrompt
	if in.Language != "" {
		prompt = fmt.Sprintf("%s The code is written in %s.", codeAnalysisPrompt, in.Language)
	}
	return uc.analyze(ctx, in, prompt)
}

func (uc *implUseCase) analyze(ctx context.Context, in analysis.AnalyzeInput, systemOverride string) (analysis.AnalyzeOutput, error) {
	if strings.TrimSpace(in.Text) == "" {
		return analysis.AnalyzeOutput{}, analysis.ErrEmptyText
	}
	if uc.llm == nil {
		return analysis.AnalyzeOutput{}, analysis.ErrNotConfigured
	}

	taskType := uc.cls.Classify(in.Text)
	severity := uc.cls.AssessSeverity(in.Text)
	modelID := uc.router.ForContext(uc.buildContext(taskType, in))

	system := systemPrompts[taskType]
	if systemOverride != "" {
		system = systemOverride
	}

	resp, err := uc.llm.ChatCompletion(ctx, &openrouter.Request{
		Model: modelID,
		Messages: []openrouter.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: in.Text},
		},
		Temperature: AnalysisTemperature,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: openrouter call failed (model=%s): %v", LogPrefixAnalyze, modelID, err)
		return analysis.AnalyzeOutput{}, fmt.Errorf("%w: %v", analysis.ErrUpstream, err)
	}

	out := analysis.AnalyzeOutput{
		ID:       uuid.NewString(),
		TaskType: taskType,
		Severity: severity,
		Model:    modelID,
		Analysis: resp.Text(),
		Usage: analysis.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
		CreatedAt: time.Now().UTC(),
	}

	uc.mem.Record(memory.Entry{
		ID:          out.ID,
		TaskType:    out.TaskType,
		Severity:    out.Severity,
		Model:       out.Model,
		TextExcerpt: excerpt(in.Text),
		Analysis:    out.Analysis,
		TotalTokens: out.Usage.TotalTokens,
		CreatedAt:   out.CreatedAt.Format(time.RFC3339),
	})

	uc.l.Infof(ctx, "%s: %s via %s (%d tokens)", LogPrefixAnalyze, taskType, modelID, out.Usage.TotalTokens)
	return out, nil
}

// buildContext assembles the routing context for a request. TextLength is
// measured in bytes of the submitted text.
func (uc *implUseCase) buildContext(taskType model.TaskType, in analysis.AnalyzeInput) model.SelectionContext {
	return model.SelectionContext{
		TaskType:          taskType,
		Complexity:        in.Hints.Complexity,
		RequiresReasoning: in.Hints.RequiresReasoning,
		RequiresSpeed:     in.Hints.RequiresSpeed,
		Language:          in.Language,
		TextLength:        len(in.Text),
	}
}

func excerpt(text string) string {
	if len(text) <= ExcerptLength {
		return text
	}
	return text[:ExcerptLength]
}
