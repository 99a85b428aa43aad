package ingest

import (
	"errors"
	"strings"
)

// TextExtractor ingests plain text and Markdown documents. Form feeds mark
// page boundaries; a document without form feeds is a single page.
type TextExtractor struct{}

// NewTextExtractor creates a plain-text extractor
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Extract splits the document on form-feed characters and returns the
// non-empty pages in order
func (e *TextExtractor) Extract(data []byte) ([]Page, error) {
	raw := string(data)
	if !strings.Contains(raw, "\f") {
		return pagesFrom([]string{raw})
	}
	return pagesFrom(strings.Split(raw, "\f"))
}

// pagesFrom cleans raw page texts and assigns 1-based page numbers,
// preserving the original page positions of non-empty pages
func pagesFrom(texts []string) ([]Page, error) {
	var pages []Page
	for i, raw := range texts {
		text := cleanText(raw)
		if text == "" {
			continue
		}
		pages = append(pages, Page{Number: i + 1, Text: text})
	}

	if len(pages) == 0 {
		return nil, &Error{Err: errors.New("document contains no text")}
	}
	return pages, nil
}
