// Package search retrieves web evidence for claims from an external search
// provider. Provider payloads are decoded defensively at this boundary:
// every field is optional and downstream code never touches raw JSON.
package search

import (
	"context"
	"fmt"
)

// Depth controls how thorough the provider search is
type Depth string

const (
	DepthBasic    Depth = "basic"
	DepthAdvanced Depth = "advanced"
)

// Options holds the per-call search parameters
type Options struct {
	Depth      Depth
	MaxResults int
}

// Result is one ranked search result. Missing provider fields decode to
// their zero values; consumers apply their own display defaults.
type Result struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score,omitempty"`
}

// Response is the provider payload, results in provider-ranked order
type Response struct {
	Query   string   `json:"query,omitempty"`
	Results []Result `json:"results"`
}

// Provider defines the interface for search providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Search runs a query and returns ranked results
	Search(ctx context.Context, query string, opts Options) (*Response, error)
}

// RetrievalError surfaces a provider or network failure. The batch verifier
// treats it as fatal to the single claim being verified, not the batch.
type RetrievalError struct {
	Provider string
	Err      error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("search failed (%s): %v", e.Provider, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }
