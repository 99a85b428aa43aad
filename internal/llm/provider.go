// Package llm abstracts the reasoning engine behind a completion interface.
// Groq and OpenAI share the OpenAI-compatible chat API; Ollama serves local
// models. Errors (auth, rate-limit, timeout) are surfaced to the caller and
// never retried here: a failed call fails that unit of work exactly once.
package llm

import (
	"context"
	"fmt"
)

// Provider defines the interface for reasoning-engine providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Complete sends a prompt pair and returns the raw model text
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest contains the input for one reasoning-engine call
type CompletionRequest struct {
	System      string  // System prompt
	Prompt      string  // User prompt
	Temperature float64 // Near-zero for deterministic adjudication
	MaxTokens   int     // Output-length budget
}

// EngineError classifies a reasoning-engine call failure. The batch verifier
// converts it into a Pending result for the claim being verified.
type EngineError struct {
	Provider string
	Err      error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("LLM call failed (%s): %v", e.Provider, e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }

// Config holds reasoning-engine provider configuration
type Config struct {
	// Provider name: "groq", "openai", "ollama"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for Groq/OpenAI
	APIKey string

	// BaseURL for custom endpoints (Groq, Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds
}
