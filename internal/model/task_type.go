package model

// TaskType is the closed set of request kinds the service understands.
// The classifier always returns exactly one of these values.
type TaskType string

const (
	TaskTypeLogAnalysis    TaskType = "log-analysis"
	TaskTypeRootCause      TaskType = "root-cause-analysis"
	TaskTypeDebugging      TaskType = "debugging"
	TaskTypeRefactoring    TaskType = "refactoring"
	TaskTypeCodeGeneration TaskType = "code-generation"
	TaskTypeDocumentation  TaskType = "documentation"
	TaskTypeExplanation    TaskType = "explanation"
	TaskTypeGeneral        TaskType = "general"
)

// AllTaskTypes lists every member of the closed set, fallback included.
var AllTaskTypes = []TaskType{
	TaskTypeLogAnalysis,
	TaskTypeRootCause,
	TaskTypeDebugging,
	TaskTypeRefactoring,
	TaskTypeCodeGeneration,
	TaskTypeDocumentation,
	TaskTypeExplanation,
	TaskTypeGeneral,
}

// Severity is an advisory assessment of how bad the submitted log looks.
// It never influences model selection.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityError    Severity = "error"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)
