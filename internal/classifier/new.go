package classifier

import (
	"logsense/internal/model"
)

// Classifier assigns a TaskType and an advisory Severity to free-form text.
// It is stateless and safe for concurrent use.
type Classifier struct{}

// New creates a new Classifier.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New() *Classifier {
	return &Classifier{}
}

// Ensure Classifier satisfies the usecase's expectations.
var _ interface {
	Classify(text string) model.TaskType
	AssessSeverity(text string) model.Severity
} = (*Classifier)(nil)
