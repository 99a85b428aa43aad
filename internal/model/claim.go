package model

// Claim represents a single verifiable factual assertion extracted from a document
type Claim struct {
	Text       string `json:"text"`                 // The claim text as stated in the document
	Context    string `json:"context,omitempty"`    // Surrounding sentences for disambiguation
	PageNumber int    `json:"page_number"`          // 1-based page the claim was found on
	ClaimType  string `json:"claim_type,omitempty"` // Free-form tag, see ClaimType* constants
}

// Claim type tags. The extraction model may emit other tags; these are the
// ones the pipeline gives special treatment.
const (
	ClaimTypeStatistic = "statistic" // Percentages, counts, measurements
	ClaimTypeDate      = "date"      // Temporal claims, timelines
	ClaimTypeFinancial = "financial" // Prices, revenue, GDP, market data
	ClaimTypeTechnical = "technical" // Product specs, scientific data
	ClaimTypeFactual   = "factual"   // Default: who/what/where assertions
)
