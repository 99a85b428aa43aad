package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/claimlens/claimlens/internal/model"
)

func sampleReport() *model.Report {
	report := &model.Report{
		Document:  "annual-report.txt",
		CheckedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		PageCount: 3,
		Results: []model.VerificationResult{
			{
				Claim:       model.Claim{Text: "Revenue grew 12%", PageNumber: 2, ClaimType: model.ClaimTypeStatistic},
				Status:      model.StatusVerified,
				Explanation: "matches filings",
				Confidence:  0.92,
				Sources: []model.Source{
					{Title: "SEC Filing", URL: "https://sec.example/f", Checked: true, IsAccessible: true},
				},
			},
			{
				Claim:       model.Claim{Text: "Founded in 1990", PageNumber: 1},
				Status:      model.StatusInaccurate,
				Explanation: "founded in 1992",
				CorrectInfo: "1992",
				Confidence:  0.8,
				Sources: []model.Source{
					{Title: "Registry", URL: "https://reg.example", Checked: true, IsAccessible: false},
				},
			},
			{
				Claim:       model.Claim{Text: "Unverifiable claim", PageNumber: 3},
				Status:      model.StatusPending,
				Explanation: "Verification failed: search timeout",
			},
		},
	}
	report.Summarize()
	return report
}

func TestRenderJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	if err := NewRenderer(false).RenderJSON(sampleReport(), path); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	var loaded model.Report
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if loaded.Document != "annual-report.txt" || len(loaded.Results) != 3 {
		t.Errorf("Unexpected round-tripped report: %+v", loaded)
	}
	if loaded.Summary.Verified != 1 || loaded.Summary.Pending != 1 {
		t.Errorf("Unexpected summary: %+v", loaded.Summary)
	}
}

func TestRenderMarkdown_Content(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")

	if err := NewRenderer(true).RenderMarkdown(sampleReport(), path); err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	md := string(data)

	for _, want := range []string{
		"# Fact-Check Report: annual-report.txt",
		"| Verified | 1 |",
		"| Pending | 1 |",
		"> Revenue grew 12%",
		"- **Correct info**: 1992",
		"[SEC Filing](https://sec.example/f)",
		"[Registry](https://reg.example) (inaccessible)",
		"Generated by claimlens",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Expected markdown to contain %q", want)
		}
	}
}

func TestRenderMarkdown_NoFooter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")

	if err := NewRenderer(false).RenderMarkdown(sampleReport(), path); err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "Generated by claimlens") {
		t.Error("Expected footer omitted")
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(false).RenderSummary(sampleReport(), &buf)

	out := buf.String()
	for _, want := range []string{
		"Document:    annual-report.txt",
		"Claims:      3",
		"Verified:    1",
		"Pending:     1 (verification failed)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected summary to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderSummary_NoPendingLineWhenClean(t *testing.T) {
	report := &model.Report{
		Document: "clean.txt",
		Results: []model.VerificationResult{
			{Status: model.StatusVerified},
		},
	}
	report.Summarize()

	var buf bytes.Buffer
	NewRenderer(false).RenderSummary(report, &buf)

	if strings.Contains(buf.String(), "Pending") {
		t.Error("Expected no pending line for clean run")
	}
}
