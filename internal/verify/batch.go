package verify

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/claimlens/claimlens/internal/model"
)

// progressLabelLength bounds the claim excerpt passed to the progress sink
const progressLabelLength = 50

// ProgressFunc is a one-way, synchronous progress notification invoked after
// each claim's adjudication attempt. It is not a control point and must not
// panic; a panicking callback is a programming error and is not recovered.
type ProgressFunc func(current, total int, label string)

// ClaimVerifier adjudicates a single claim
type ClaimVerifier interface {
	Verify(ctx context.Context, claim model.Claim) (model.VerificationResult, error)
}

// BatchVerifier iterates claims strictly sequentially through an
// adjudicator, isolating per-claim failures so one bad claim cannot abort
// the batch.
type BatchVerifier struct {
	adjudicator ClaimVerifier
	limiter     *rate.Limiter // nil disables pacing
}

// NewBatchVerifier creates a batch verifier. claimsPerSecond <= 0 disables
// pacing between adjudication round-trips.
func NewBatchVerifier(adjudicator ClaimVerifier, claimsPerSecond float64, burst int) *BatchVerifier {
	var limiter *rate.Limiter
	if claimsPerSecond > 0 {
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(claimsPerSecond), burst)
	}

	return &BatchVerifier{
		adjudicator: adjudicator,
		limiter:     limiter,
	}
}

// VerifyClaims verifies claims in input order and returns exactly one result
// per claim, in the same order. A failed claim yields a Pending placeholder
// carrying the cause; the batch always continues to the next claim.
func (b *BatchVerifier) VerifyClaims(ctx context.Context, claims []model.Claim, progress ProgressFunc) []model.VerificationResult {
	results := make([]model.VerificationResult, 0, len(claims))

	for i, claim := range claims {
		result, err := b.verifyOne(ctx, claim)
		if err != nil {
			result = pendingResult(claim, err)
		}
		results = append(results, result)

		if progress != nil {
			progress(i+1, len(claims), progressLabel(claim))
		}
	}

	return results
}

func (b *BatchVerifier) verifyOne(ctx context.Context, claim model.Claim) (model.VerificationResult, error) {
	if b.limiter != nil {
		if err := b.limiter.Wait(ctx); err != nil {
			return model.VerificationResult{}, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	return b.adjudicator.Verify(ctx, claim)
}

// pendingResult builds the degraded placeholder for a failed claim. Pending
// is reserved for pipeline failure and is never a model verdict.
func pendingResult(claim model.Claim, cause error) model.VerificationResult {
	return model.VerificationResult{
		Claim:       claim,
		Status:      model.StatusPending,
		Explanation: fmt.Sprintf("Verification failed: %v", cause),
		Confidence:  0.0,
	}
}

func progressLabel(claim model.Claim) string {
	runes := []rune(claim.Text)
	if len(runes) <= progressLabelLength {
		return claim.Text
	}
	return string(runes[:progressLabelLength]) + "..."
}
