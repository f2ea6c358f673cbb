// Package perception holds the completion clients that turn a finished prompt
// into model text.
package perception

import (
	"context"
	"errors"
)

// LLMClient defines the interface for completion providers.
// An empty model selects the client's configured default.
type LLMClient interface {
	Generate(ctx context.Context, model, content string) (string, error)
}

// ErrEmptyResponse is returned when the provider answers without candidates.
var ErrEmptyResponse = errors.New("empty response from model")

// ErrUnsupportedProvider is returned by NewClient for unknown providers.
var ErrUnsupportedProvider = errors.New("unsupported LLM provider")

// LLMClientFunc adapts a plain function to LLMClient.
type LLMClientFunc func(ctx context.Context, model, content string) (string, error)

// Generate calls f.
func (f LLMClientFunc) Generate(ctx context.Context, model, content string) (string, error) {
	return f(ctx, model, content)
}
