// Package ingest turns raw document bytes into an ordered list of cleaned
// page texts. Pages containing only whitespace are omitted; a document that
// yields no pages is an ingestion error, which is fatal to the whole run.
package ingest

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Page is one page of extracted document text
type Page struct {
	Number int    // 1-based, strictly increasing
	Text   string // Cleaned text, never whitespace-only
}

// Error classifies a failure to ingest a document
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("ingest %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("ingest: %v", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Extractor extracts ordered page texts from raw document bytes
type Extractor interface {
	Extract(data []byte) ([]Page, error)
}

// ForPath picks an extractor by file extension
func ForPath(path string) Extractor {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return NewHTMLExtractor()
	default:
		return NewTextExtractor()
	}
}

var (
	collapseSpace = regexp.MustCompile(`[ \t]+`)
	collapseBlank = regexp.MustCompile(`\n{3,}`)
)

// cleanText normalizes whitespace and strips NUL bytes from extracted text
func cleanText(text string) string {
	text = strings.ReplaceAll(text, "\x00", "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = collapseSpace.ReplaceAllString(text, " ")
	text = collapseBlank.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
