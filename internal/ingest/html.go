package ingest

import (
	"bytes"
	"errors"
	"strings"

	"golang.org/x/net/html"
)

// HTMLExtractor ingests HTML documents by walking the DOM and collecting
// visible text. HTML has no page structure, so the result is a single page.
type HTMLExtractor struct{}

// NewHTMLExtractor creates an HTML extractor
func NewHTMLExtractor() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract parses the HTML and returns its visible text as page 1
func (e *HTMLExtractor) Extract(data []byte) ([]Page, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &Error{Err: err}
	}

	text := cleanText(visibleText(doc))
	if text == "" {
		return nil, &Error{Err: errors.New("document contains no text")}
	}

	return []Page{{Number: 1, Text: text}}, nil
}

// visibleText extracts text nodes from HTML, skipping scripts/styles
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "head":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}
