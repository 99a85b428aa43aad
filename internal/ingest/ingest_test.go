package ingest

import (
	"errors"
	"strings"
	"testing"
)

func TestTextExtractor_SinglePage(t *testing.T) {
	pages, err := NewTextExtractor().Extract([]byte("plain document with no page breaks"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(pages) != 1 {
		t.Fatalf("Expected 1 page, got %d", len(pages))
	}
	if pages[0].Number != 1 {
		t.Errorf("Expected page 1, got %d", pages[0].Number)
	}
	if pages[0].Text != "plain document with no page breaks" {
		t.Errorf("Unexpected text: %q", pages[0].Text)
	}
}

func TestTextExtractor_FormFeedPages(t *testing.T) {
	pages, err := NewTextExtractor().Extract([]byte("page one\fpage two\fpage three"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(pages) != 3 {
		t.Fatalf("Expected 3 pages, got %d", len(pages))
	}
	for i, want := range []string{"page one", "page two", "page three"} {
		if pages[i].Number != i+1 {
			t.Errorf("Page %d: expected number %d, got %d", i, i+1, pages[i].Number)
		}
		if pages[i].Text != want {
			t.Errorf("Page %d: expected %q, got %q", i, want, pages[i].Text)
		}
	}
}

func TestTextExtractor_WhitespacePageOmittedNumbersKept(t *testing.T) {
	pages, err := NewTextExtractor().Extract([]byte("page one\f   \n\t\fpage three"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(pages) != 2 {
		t.Fatalf("Expected 2 pages, got %d", len(pages))
	}
	if pages[0].Number != 1 || pages[1].Number != 3 {
		t.Errorf("Expected original page positions kept, got %d and %d", pages[0].Number, pages[1].Number)
	}
}

func TestTextExtractor_EmptyDocument(t *testing.T) {
	_, err := NewTextExtractor().Extract([]byte("   \n\t  "))
	if err == nil {
		t.Fatal("Expected error for whitespace-only document")
	}

	var ie *Error
	if !errors.As(err, &ie) {
		t.Errorf("Expected ingest error, got %T", err)
	}
}

func TestTextExtractor_CleansText(t *testing.T) {
	pages, err := NewTextExtractor().Extract([]byte("a\x00b\r\nc   d\n\n\n\n\ne"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	text := pages[0].Text
	if strings.Contains(text, "\x00") {
		t.Error("Expected NUL bytes stripped")
	}
	if strings.Contains(text, "\r") {
		t.Error("Expected CRLF normalized")
	}
	if strings.Contains(text, "   ") {
		t.Error("Expected runs of spaces collapsed")
	}
	if strings.Contains(text, "\n\n\n") {
		t.Error("Expected blank-line runs collapsed")
	}
}

func TestHTMLExtractor_VisibleText(t *testing.T) {
	doc := `<html><head><title>ignored</title><style>body { color: red }</style></head>
<body><h1>Annual Report</h1><script>var x = "hidden";</script>
<p>Revenue grew 12% in 2023.</p><noscript>also hidden</noscript></body></html>`

	pages, err := NewHTMLExtractor().Extract([]byte(doc))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(pages) != 1 || pages[0].Number != 1 {
		t.Fatalf("Expected single page 1, got %v", pages)
	}

	text := pages[0].Text
	for _, want := range []string{"Annual Report", "Revenue grew 12% in 2023."} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected visible text %q, got %q", want, text)
		}
	}
	for _, hidden := range []string{"ignored", "color: red", "var x", "also hidden"} {
		if strings.Contains(text, hidden) {
			t.Errorf("Expected %q excluded from visible text", hidden)
		}
	}
}

func TestHTMLExtractor_NoVisibleText(t *testing.T) {
	_, err := NewHTMLExtractor().Extract([]byte(`<html><head><script>x()</script></head><body></body></html>`))
	if err == nil {
		t.Fatal("Expected error for document with no visible text")
	}
}

func TestForPath_ExtensionRouting(t *testing.T) {
	if _, ok := ForPath("report.html").(*HTMLExtractor); !ok {
		t.Error("Expected HTML extractor for .html")
	}
	if _, ok := ForPath("REPORT.HTM").(*HTMLExtractor); !ok {
		t.Error("Expected HTML extractor for .HTM")
	}
	if _, ok := ForPath("notes.txt").(*TextExtractor); !ok {
		t.Error("Expected text extractor for .txt")
	}
	if _, ok := ForPath("readme.md").(*TextExtractor); !ok {
		t.Error("Expected text extractor for .md")
	}
}
