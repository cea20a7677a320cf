package classifier_test

import (
	"testing"

	"logsense/internal/classifier"
	"logsense/internal/model"
)

func TestClassify(t *testing.T) {
	c := classifier.New()

	tests := []struct {
		name string
		text string
		want model.TaskType
	}{
		{
			name: "java exception classifies as log analysis",
			text: "Exception: NullPointerException at line 5",
			want: model.TaskTypeLogAnalysis,
		},
		{
			name: "refactor request",
			text: "please refactor this function",
			want: model.TaskTypeRefactoring,
		},
		{
			name: "no recognizable keyword falls back to general",
			text: "hello there, nice weather today",
			want: model.TaskTypeGeneral,
		},
		{
			name: "empty input falls back to general",
			text: "",
			want: model.TaskTypeGeneral,
		},
		{
			name: "root cause question",
			text: "why did the deployment roll back last night?",
			want: model.TaskTypeRootCause,
		},
		{
			name: "go panic classifies as log analysis",
			text: "panic: runtime error: index out of range",
			want: model.TaskTypeLogAnalysis,
		},
		{
			name: "code generation request",
			text: "write a helper that parses cron expressions",
			want: model.TaskTypeCodeGeneration,
		},
		{
			name: "documentation request",
			text: "add a docstring to this method",
			want: model.TaskTypeDocumentation,
		},
		{
			name: "explanation request",
			text: "what does this regex actually match?",
			want: model.TaskTypeExplanation,
		},
		{
			name: "case insensitive matching",
			text: "PLEASE DEBUG THIS FOR ME",
			want: model.TaskTypeDebugging,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// The rule list is a priority list: when text matches several rules, the
// earliest rule wins. Debugging is ordered before code-generation, so mixed
// text resolves to debugging.
func TestClassifyPriorityOrder(t *testing.T) {
	c := classifier.New()

	got := c.Classify("debug this, then generate a test for it")
	if got != model.TaskTypeDebugging {
		t.Errorf("mixed debug+generate text = %q, want %q", got, model.TaskTypeDebugging)
	}

	// Log-analysis keywords outrank everything else.
	got = c.Classify("explain this stack trace")
	if got != model.TaskTypeLogAnalysis {
		t.Errorf("stack trace + explain text = %q, want %q", got, model.TaskTypeLogAnalysis)
	}
}

func TestClassifyRuleOrderPinned(t *testing.T) {
	want := []model.TaskType{
		model.TaskTypeLogAnalysis,
		model.TaskTypeRootCause,
		model.TaskTypeDebugging,
		model.TaskTypeRefactoring,
		model.TaskTypeCodeGeneration,
		model.TaskTypeDocumentation,
		model.TaskTypeExplanation,
	}

	if len(classifier.Rules) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(classifier.Rules))
	}
	for i, rule := range classifier.Rules {
		if rule.TaskType != want[i] {
			t.Errorf("rule %d: got %q, want %q", i, rule.TaskType, want[i])
		}
		if len(rule.Keywords) == 0 {
			t.Errorf("rule %d (%s): no keywords", i, rule.TaskType)
		}
	}
}

// Every input must map to exactly one member of the closed set.
func TestClassifyAlwaysClosedSet(t *testing.T) {
	c := classifier.New()

	inputs := []string{
		"", " ", "debugger statement found in bundle",
		"ERROR: connection refused", "lorem ipsum dolor sit amet",
		"生成代码", "\x00\xff binary garbage",
	}

	valid := make(map[model.TaskType]bool, len(model.AllTaskTypes))
	for _, tt := range model.AllTaskTypes {
		valid[tt] = true
	}

	for _, in := range inputs {
		if got := c.Classify(in); !valid[got] {
			t.Errorf("Classify(%q) = %q, outside the closed set", in, got)
		}
	}
}

func TestAssessSeverity(t *testing.T) {
	c := classifier.New()

	tests := []struct {
		text string
		want model.Severity
	}{
		{"FATAL: database unreachable", model.SeverityCritical},
		{"panic: nil map write", model.SeverityCritical},
		{"Exception in thread main", model.SeverityError},
		{"WARN deprecated flag used", model.SeverityWarning},
		{"request served in 12ms", model.SeverityInfo},
		{"", model.SeverityInfo},
	}

	for _, tt := range tests {
		if got := c.AssessSeverity(tt.text); got != tt.want {
			t.Errorf("AssessSeverity(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
