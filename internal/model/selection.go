package model

// Complexity is the caller-declared difficulty of the request.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// SelectionContext carries per-request hints used to refine model choice.
// It is built fresh for each request and discarded after routing.
type SelectionContext struct {
	TaskType          TaskType
	Complexity        Complexity
	RequiresReasoning bool
	RequiresSpeed     bool
	Language          string
	TextLength        int
}

// ModelDescriptor pairs a short id and human label with the identifier the
// OpenRouter API expects. Descriptors are static and read-only after startup.
type ModelDescriptor struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	OpenRouterID string `json:"openrouter_id"`
}
