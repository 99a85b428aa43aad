package verify

import (
	"fmt"
	"strings"

	"github.com/claimlens/claimlens/internal/model"
	"github.com/claimlens/claimlens/internal/search"
)

// noResultsSentinel is fed to the adjudication prompt when the provider
// returns nothing; the prompt must never receive an empty evidence block.
const noResultsSentinel = "No search results found."

const (
	maxSources       = 3
	maxSnippetLength = 200
)

// FormatEvidence renders search results into the evidence block for the
// adjudication prompt, preserving provider order.
func FormatEvidence(results []search.Result) string {
	if len(results) == 0 {
		return noResultsSentinel
	}

	blocks := make([]string, 0, len(results))
	for i, r := range results {
		title := r.Title
		if title == "" {
			title = "Unknown"
		}
		url := r.URL
		if url == "" {
			url = "N/A"
		}
		content := r.Content
		if content == "" {
			content = "No content available"
		}

		blocks = append(blocks, fmt.Sprintf("Source %d: %s\nURL: %s\nContent: %s", i+1, title, url, content))
	}

	return strings.Join(blocks, "\n\n")
}

// ExtractSources projects the top search results into citable sources.
// Missing fields get display defaults; snippets are bounded excerpts.
func ExtractSources(results []search.Result) []model.Source {
	sources := make([]model.Source, 0, maxSources)

	for _, r := range results {
		if len(sources) >= maxSources {
			break
		}

		title := r.Title
		if title == "" {
			title = "Unknown"
		}

		snippet := r.Content
		if runes := []rune(snippet); len(runes) > maxSnippetLength {
			snippet = string(runes[:maxSnippetLength]) + "..."
		}

		sources = append(sources, model.Source{
			Title:   title,
			URL:     r.URL,
			Snippet: snippet,
		})
	}

	return sources
}
