package analysis

import "errors"

var (
	// ErrEmptyText indicates the request carried no text to analyze.
	ErrEmptyText = errors.New("text is required")

	// ErrNotFound indicates no recorded analysis matches the given id.
	ErrNotFound = errors.New("analysis not found")

	// ErrUpstream indicates the OpenRouter call failed.
	ErrUpstream = errors.New("upstream analysis failed")

	// ErrNotConfigured indicates no OpenRouter API key is configured, so
	// only classification is available.
	ErrNotConfigured = errors.New("openrouter is not configured")
)
