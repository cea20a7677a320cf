package openrouter

import "time"

const (
	// DefaultBaseURL is the OpenRouter API endpoint.
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultTimeout bounds a single chat-completion call.
	DefaultTimeout = 60 * time.Second
)
