package usecase

import "logsense/internal/model"

// Log prefixes
const (
	LogPrefixAnalyze  = "analysis.usecase.Analyze"
	LogPrefixClassify = "analysis.usecase.Classify"
)

const (
	// AnalysisTemperature keeps upstream answers focused.
	AnalysisTemperature = 0.2

	// ExcerptLength caps the text excerpt recorded in history.
	ExcerptLength = 200
)

// System prompts per task type. The user's text is always forwarded
// verbatim as the user message; only the system framing varies.
var systemPrompts = map[model.TaskType]string{
	model.TaskTypeLogAnalysis:    "You are a DevOps assistant. Analyze the following log output: identify errors, their likely causes, and concrete remediation steps.",
	model.TaskTypeRootCause:      "You are an incident analyst. Determine the most likely root cause of the problem described below and explain your reasoning step by step.",
	model.TaskTypeDebugging:      "You are a debugging assistant. Find the defect in the following input and propose a minimal fix.",
	model.TaskTypeRefactoring:    "You are a code reviewer. Suggest a cleaner structure for the following code while preserving behavior.",
	model.TaskTypeCodeGeneration: "You are a coding assistant. Produce the code requested below with brief usage notes.",
	model.TaskTypeDocumentation:  "You are a technical writer. Produce clear documentation for the following input.",
	model.TaskTypeExplanation:    "You are a patient teacher. Explain the following input clearly and concisely.",
	model.TaskTypeGeneral:        "You are a helpful engineering assistant.",
}

// codeAnalysisPrompt frames AnalyzeCode requests; the language hint is
// appended when present.
const codeAnalysisPrompt = "You are a code analysis assistant. Review the following code for defects, risky patterns, and improvements."
