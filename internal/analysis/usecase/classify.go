package usecase

import (
	"context"
	"strings"

	"logsense/internal/analysis"
	"logsense/internal/memory"
	"logsense/internal/model"
)

// Classify runs classification and model routing without touching the
// upstream API. It backs the /classify endpoint and the CLI dry run.
func (uc *implUseCase) Classify(ctx context.Context, in analysis.ClassifyInput) (analysis.ClassifyOutput, error) {
	if strings.TrimSpace(in.Text) == "" {
		return analysis.ClassifyOutput{}, analysis.ErrEmptyText
	}

	taskType := uc.cls.Classify(in.Text)
	severity := uc.cls.AssessSeverity(in.Text)

	sc := model.SelectionContext{
		TaskType:          taskType,
		Complexity:        in.Hints.Complexity,
		RequiresReasoning: in.Hints.RequiresReasoning,
		RequiresSpeed:     in.Hints.RequiresSpeed,
		Language:          in.Language,
		TextLength:        len(in.Text),
	}

	out := analysis.ClassifyOutput{
		TaskType:   taskType,
		Severity:   severity,
		Model:      uc.router.ForContext(sc),
		TextLength: len(in.Text),
	}

	uc.l.Debugf(ctx, "%s: %s -> %s", LogPrefixClassify, taskType, out.Model)
	return out, nil
}

// History returns recent analyses, newest first, with aggregate stats.
func (uc *implUseCase) History(_ context.Context, limit int) (analysis.HistoryOutput, error) {
	return analysis.HistoryOutput{
		Items: uc.mem.Recent(limit),
		Stats: uc.mem.Stats(),
	}, nil
}

// Detail returns one recorded analysis by id.
func (uc *implUseCase) Detail(_ context.Context, id string) (memory.Entry, error) {
	e, ok := uc.mem.Get(id)
	if !ok {
		return memory.Entry{}, analysis.ErrNotFound
	}
	return e, nil
}

// Models exposes the static routing tables.
func (uc *implUseCase) Models(_ context.Context) (analysis.CatalogOutput, error) {
	return analysis.CatalogOutput{
		TaskModels:        uc.router.Catalog().TaskModels(),
		LanguageModels:    uc.router.Catalog().LanguageModels(),
		LongTextThreshold: uc.router.LongTextThreshold(),
	}, nil
}
