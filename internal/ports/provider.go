package ports

import "context"

// CompletionRequest is a single chat-style completion with a system prompt
type CompletionRequest struct {
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
}

// Provider wraps one text-generation service behind a uniform completion call
type Provider interface {
	// Name is the identifier written to the artifact's provider field
	Name() string

	// Model is the identifier written to the artifact's model field
	Model() string

	// Complete submits the request and returns the generated text.
	// Any failure (missing credential, transport, non-2xx, malformed body)
	// is returned as an error.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
