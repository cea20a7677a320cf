package openrouter

import "context"

// IOpenRouter defines the interface for the OpenRouter LLM client.
type IOpenRouter interface {
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)
}
