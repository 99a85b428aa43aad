package model

import "time"

// Report represents a complete fact-check run over one document
type Report struct {
	Document   string    `json:"document"`    // Document name or path
	CheckedAt  time.Time `json:"checked_at"`  // When the run completed
	PageCount  int       `json:"page_count"`  // Pages the ingester produced
	ChunkCount int       `json:"chunk_count"` // Chunks submitted for extraction

	Claims  []Claim              `json:"claims"`
	Results []VerificationResult `json:"results"`

	Summary Summary `json:"summary"`
}

// Summary holds the status tallies for a run
type Summary struct {
	Total      int `json:"total"`
	Verified   int `json:"verified"`
	Inaccurate int `json:"inaccurate"`
	False      int `json:"false"`
	Pending    int `json:"pending"`
}

// Summarize recomputes the tallies from the result list
func (r *Report) Summarize() {
	s := Summary{Total: len(r.Results)}
	for _, res := range r.Results {
		switch res.Status {
		case StatusVerified:
			s.Verified++
		case StatusInaccurate:
			s.Inaccurate++
		case StatusFalse:
			s.False++
		case StatusPending:
			s.Pending++
		}
	}
	r.Summary = s
}
