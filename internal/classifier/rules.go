package classifier

import (
	"strings"

	"logsense/internal/model"
)

// Rule pairs a TaskType with the lowercase substrings that select it.
type Rule struct {
	TaskType model.TaskType
	Keywords []string
}

// Rules is the classification priority list. Rules are evaluated top to
// bottom and the first rule with any keyword hit wins, so ambiguous text
// (say, containing both "debug" and "generate") resolves to the earlier
// rule. Tests pin this order; do not reorder casually.
var Rules = []Rule{
	{
		TaskType: model.TaskTypeLogAnalysis,
		Keywords: []string{
			"exception", "stack trace", "traceback", "panic:",
			"fatal", "critical", "error:", "segfault", "core dump",
			"analyze this log", "log output",
		},
	},
	{
		TaskType: model.TaskTypeRootCause,
		Keywords: []string{
			"root cause", "why did", "what caused", "postmortem",
		},
	},
	{
		TaskType: model.TaskTypeDebugging,
		Keywords: []string{
			"debug", "bug", "fix this", "broken", "not working",
			"doesn't work", "crash",
		},
	},
	{
		TaskType: model.TaskTypeRefactoring,
		Keywords: []string{
			"refactor", "clean up", "cleanup", "simplify", "restructure",
			"improve this code",
		},
	},
	{
		TaskType: model.TaskTypeCodeGeneration,
		Keywords: []string{
			"generate", "write a", "write me", "create a", "implement",
			"scaffold", "boilerplate",
		},
	},
	{
		TaskType: model.TaskTypeDocumentation,
		Keywords: []string{
			"document", "docstring", "readme", "comment this", "api docs",
		},
	},
	{
		TaskType: model.TaskTypeExplanation,
		Keywords: []string{
			"explain", "what does", "how does", "walk me through",
			"understand",
		},
	},
}

// Classify returns the TaskType of the first matching rule, or
// TaskTypeGeneral when nothing matches. It never fails: "no match" is the
// default branch, not an error.
func (c *Classifier) Classify(text string) model.TaskType {
	lower := strings.ToLower(text)

	for _, rule := range Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.TaskType
			}
		}
	}

	return model.TaskTypeGeneral
}
