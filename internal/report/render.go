// Package report renders verification reports to JSON and Markdown and
// prints the run summary.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/claimlens/claimlens/internal/model"
)

// Renderer writes reports to files and the summary to a writer
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// RenderMarkdown writes the report as a human-readable Markdown document
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Fact-Check Report: %s\n\n", report.Document)
	fmt.Fprintf(&sb, "Checked: %s\n\n", report.CheckedAt.Format("2006-01-02 15:04 MST"))

	fmt.Fprintf(&sb, "## Summary\n\n")
	fmt.Fprintf(&sb, "| Status | Count |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Verified | %d |\n", report.Summary.Verified)
	fmt.Fprintf(&sb, "| Inaccurate | %d |\n", report.Summary.Inaccurate)
	fmt.Fprintf(&sb, "| False | %d |\n", report.Summary.False)
	fmt.Fprintf(&sb, "| Pending | %d |\n", report.Summary.Pending)
	fmt.Fprintf(&sb, "| **Total** | **%d** |\n\n", report.Summary.Total)

	fmt.Fprintf(&sb, "## Claims\n\n")
	for i, res := range report.Results {
		fmt.Fprintf(&sb, "### %d. %s — %s\n\n", i+1, statusEmoji(res.Status), res.Status)
		fmt.Fprintf(&sb, "> %s\n\n", res.Claim.Text)
		fmt.Fprintf(&sb, "- **Page**: %d\n", res.Claim.PageNumber)
		if res.Claim.ClaimType != "" {
			fmt.Fprintf(&sb, "- **Type**: %s\n", res.Claim.ClaimType)
		}
		fmt.Fprintf(&sb, "- **Confidence**: %.2f\n", res.Confidence)
		fmt.Fprintf(&sb, "- **Explanation**: %s\n", res.Explanation)
		if res.CorrectInfo != "" {
			fmt.Fprintf(&sb, "- **Correct info**: %s\n", res.CorrectInfo)
		}

		if len(res.Sources) > 0 {
			fmt.Fprintf(&sb, "- **Sources**:\n")
			for _, src := range res.Sources {
				marker := ""
				if src.Checked && !src.IsAccessible {
					marker = " (inaccessible)"
				}
				fmt.Fprintf(&sb, "  - [%s](%s)%s\n", src.Title, src.URL, marker)
			}
		}
		fmt.Fprintf(&sb, "\n")
	}

	if r.includeFooter {
		fmt.Fprintf(&sb, "---\n\nGenerated by claimlens. Verdicts reflect retrieved web evidence at check time, not ground truth.\n")
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// RenderSummary prints the status tallies to w
func (r *Renderer) RenderSummary(report *model.Report, w io.Writer) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  Document:    %s\n", report.Document)
	fmt.Fprintf(w, "  Claims:      %d\n", report.Summary.Total)
	fmt.Fprintf(w, "  Verified:    %d\n", report.Summary.Verified)
	fmt.Fprintf(w, "  Inaccurate:  %d\n", report.Summary.Inaccurate)
	fmt.Fprintf(w, "  False:       %d\n", report.Summary.False)
	if report.Summary.Pending > 0 {
		fmt.Fprintf(w, "  Pending:     %d (verification failed)\n", report.Summary.Pending)
	}
	fmt.Fprintf(w, "\n")
}

func statusEmoji(status model.VerificationStatus) string {
	switch status {
	case model.StatusVerified:
		return "✅"
	case model.StatusInaccurate:
		return "⚠️"
	case model.StatusFalse:
		return "❌"
	default:
		return "⏳"
	}
}
