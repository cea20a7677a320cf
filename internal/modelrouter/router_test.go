package modelrouter_test

import (
	"testing"

	"logsense/internal/model"
	"logsense/internal/modelrouter"
)

func newRouter() *modelrouter.Router {
	return modelrouter.New(modelrouter.NewCatalog(), 0)
}

func TestForTaskTypeNeverEmpty(t *testing.T) {
	r := newRouter()

	for _, tt := range model.AllTaskTypes {
		if got := r.ForTaskType(tt); got == "" {
			t.Errorf("ForTaskType(%q) returned empty model id", tt)
		}
	}

	t.Run("unknown task type falls back to default", func(t *testing.T) {
		got := r.ForTaskType(model.TaskType("no-such-type"))
		want := r.ForTaskType(model.TaskTypeGeneral)
		if got != want {
			t.Errorf("unknown task type = %q, want default %q", got, want)
		}
	})
}

func TestForContextRulePrecedence(t *testing.T) {
	r := newRouter()
	reasoning := r.ForContext(model.SelectionContext{RequiresReasoning: true})
	fast := r.ForContext(model.SelectionContext{RequiresSpeed: true})

	t.Run("high complexity routes to reasoning", func(t *testing.T) {
		got := r.ForContext(model.SelectionContext{
			Complexity: model.ComplexityHigh,
			TaskType:   model.TaskTypeGeneral,
		})
		if got != reasoning {
			t.Errorf("got %q, want reasoning model %q", got, reasoning)
		}
	})

	t.Run("reasoning beats speed when both set", func(t *testing.T) {
		got := r.ForContext(model.SelectionContext{
			RequiresReasoning: true,
			RequiresSpeed:     true,
		})
		if got != reasoning {
			t.Errorf("got %q, want reasoning model %q", got, reasoning)
		}
	})

	t.Run("speed beats language hint", func(t *testing.T) {
		got := r.ForContext(model.SelectionContext{
			RequiresSpeed: true,
			Language:      "go",
		})
		if got != fast {
			t.Errorf("got %q, want fast model %q", got, fast)
		}
	})

	t.Run("language hint beats task type", func(t *testing.T) {
		got := r.ForContext(model.SelectionContext{
			Language: "go",
			TaskType: model.TaskTypeDocumentation,
		})
		if got == r.ForTaskType(model.TaskTypeDocumentation) {
			t.Errorf("language hint ignored, got task-type model %q", got)
		}
	})

	t.Run("language hint is case insensitive", func(t *testing.T) {
		upper := r.ForContext(model.SelectionContext{Language: "Go"})
		lower := r.ForContext(model.SelectionContext{Language: "go"})
		if upper != lower {
			t.Errorf("Language %q = %q, %q = %q; want equal", "Go", upper, "go", lower)
		}
	})

	t.Run("unknown language falls through to task type", func(t *testing.T) {
		got := r.ForContext(model.SelectionContext{
			Language: "cobol",
			TaskType: model.TaskTypeGeneral,
		})
		if got != r.ForTaskType(model.TaskTypeGeneral) {
			t.Errorf("got %q, want task-type fallback", got)
		}
	})
}

func TestForContextLongTextBoundary(t *testing.T) {
	r := newRouter()
	threshold := r.LongTextThreshold()
	reasoning := r.ForContext(model.SelectionContext{RequiresReasoning: true})

	t.Run("exactly at threshold does not trigger", func(t *testing.T) {
		got := r.ForContext(model.SelectionContext{
			TaskType:   model.TaskTypeGeneral,
			TextLength: threshold,
		})
		if got != r.ForTaskType(model.TaskTypeGeneral) {
			t.Errorf("length == threshold routed to %q, want task-type model", got)
		}
	})

	t.Run("one above threshold triggers", func(t *testing.T) {
		got := r.ForContext(model.SelectionContext{
			TaskType:   model.TaskTypeGeneral,
			TextLength: threshold + 1,
		})
		if got != reasoning {
			t.Errorf("length == threshold+1 routed to %q, want reasoning model %q", got, reasoning)
		}
	})
}

func TestForContextDeterministic(t *testing.T) {
	r := newRouter()
	sc := model.SelectionContext{
		TaskType:   model.TaskTypeDebugging,
		Language:   "python",
		TextLength: 500,
	}

	first := r.ForContext(sc)
	for i := 0; i < 10; i++ {
		if got := r.ForContext(sc); got != first {
			t.Fatalf("ForContext not deterministic: %q then %q", first, got)
		}
	}
}

func TestCustomThreshold(t *testing.T) {
	r := modelrouter.New(modelrouter.NewCatalog(), 100)
	if r.LongTextThreshold() != 100 {
		t.Fatalf("threshold = %d, want 100", r.LongTextThreshold())
	}

	got := r.ForContext(model.SelectionContext{TaskType: model.TaskTypeGeneral, TextLength: 101})
	want := r.ForContext(model.SelectionContext{RequiresReasoning: true})
	if got != want {
		t.Errorf("custom threshold not applied: got %q, want %q", got, want)
	}
}
