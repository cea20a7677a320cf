package modelrouter

import (
	"strings"

	"logsense/internal/model"
)

// ForTaskType returns the default OpenRouter id for a TaskType. Unknown
// values fall back to the default descriptor.
func (r *Router) ForTaskType(t model.TaskType) string {
	if desc, ok := r.catalog.taskModels[t]; ok {
		return desc.OpenRouterID
	}
	return r.catalog.fallback.OpenRouterID
}

// ForContext resolves a SelectionContext through the routing decision list.
// Rules are evaluated top to bottom, first satisfied rule wins:
//
//  1. high complexity or reasoning required  -> reasoning model
//  2. speed required                         -> fast model
//  3. recognized language hint               -> per-language table
//  4. text longer than the threshold         -> reasoning model
//  5. otherwise                              -> TaskType table
//
// Deterministic for a given context. An unrecognized language hint is not
// an error; it simply falls through to the later rules.
func (r *Router) ForContext(sc model.SelectionContext) string {
	if sc.Complexity == model.ComplexityHigh || sc.RequiresReasoning {
		return r.catalog.reasoning.OpenRouterID
	}

	if sc.RequiresSpeed {
		return r.catalog.fast.OpenRouterID
	}

	if sc.Language != "" {
		if desc, ok := r.catalog.languageModels[strings.ToLower(sc.Language)]; ok {
			return desc.OpenRouterID
		}
	}

	if sc.TextLength > r.longTextThreshold {
		return r.catalog.reasoning.OpenRouterID
	}

	return r.ForTaskType(sc.TaskType)
}
