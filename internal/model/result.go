package model

// VerificationStatus classifies the outcome of verifying a claim
type VerificationStatus string

const (
	StatusVerified   VerificationStatus = "Verified"   // Claim matches current, reliable data
	StatusInaccurate VerificationStatus = "Inaccurate" // Outdated or slightly wrong information
	StatusFalse      VerificationStatus = "False"      // Demonstrably false or unsupported
	StatusPending    VerificationStatus = "Pending"    // Pipeline failure, never a model verdict
)

// Source is a citable search result backing a verification
type Source struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"` // Bounded excerpt of retrieved content

	// Accessibility fields are populated only when source checking is enabled
	Checked      bool `json:"checked,omitempty"`
	IsAccessible bool `json:"is_accessible,omitempty"`
	StatusCode   int  `json:"status_code,omitempty"`
}

// VerificationResult is the verdict for a single claim. Exactly one is
// produced per input claim, in input order; a failed claim yields a Pending
// placeholder rather than being dropped.
type VerificationResult struct {
	Claim       Claim              `json:"claim"`
	Status      VerificationStatus `json:"status"`
	Explanation string             `json:"explanation"`
	CorrectInfo string             `json:"correct_info,omitempty"` // Fresher figure when Inaccurate
	Sources     []Source           `json:"sources,omitempty"`      // At most 3, provider order
	Confidence  float64            `json:"confidence"`             // In [0,1]
}
