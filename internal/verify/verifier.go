// Package verify implements the per-claim verification workflow: derive a
// search query from the claim, retrieve evidence, have the reasoning engine
// adjudicate claim against evidence, and parse a structured verdict from the
// model output.
package verify

import (
	"context"
	"fmt"

	"github.com/claimlens/claimlens/internal/llm"
	"github.com/claimlens/claimlens/internal/model"
	"github.com/claimlens/claimlens/internal/search"
)

const verificationSystemPrompt = "You are a precise fact-checker. Analyze claims against search results and provide accurate verdicts. Always respond with valid JSON only."

const verificationPromptTemplate = `You are a fact-checking assistant. Your task is to verify if a claim is accurate based on the search results provided.

CLAIM TO VERIFY:
"%s"

CONTEXT FROM DOCUMENT:
"%s"

SEARCH RESULTS:
%s

Analyze the search results and determine if the claim is:
1. **VERIFIED** - The claim matches current, reliable data
2. **INACCURATE** - The claim contains outdated or slightly wrong information (e.g., old statistics, wrong dates, old GDP figures)
3. **FALSE** - The claim is demonstrably false or no credible evidence supports it

IMPORTANT: If the claim reports data that is five or more years old relative to the current data in the search results, mark it as INACCURATE and provide the correct current information.

Respond with a JSON object:
{
    "status": "VERIFIED" | "INACCURATE" | "FALSE",
    "explanation": "Brief explanation of your verdict",
    "correct_info": "If inaccurate/false, provide the correct information here. Otherwise null.",
    "confidence": 0.0 to 1.0
}

Be precise and cite specific data from the search results. If the search results don't contain relevant information, mark as FALSE with low confidence.`

const (
	adjudicationTemperature = 0.1
	adjudicationMaxTokens   = 500
)

// Adjudicator verifies a single claim against live web evidence
type Adjudicator struct {
	searcher   search.Provider
	engine     llm.Provider
	depth      search.Depth
	maxResults int
}

// NewAdjudicator creates an adjudicator over the given collaborators.
// Search depth and result count are fixed policy, not tunable per call.
func NewAdjudicator(searcher search.Provider, engine llm.Provider, cfg model.SearchConfig) *Adjudicator {
	depth := search.Depth(cfg.Depth)
	if depth == "" {
		depth = search.DepthAdvanced
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 5
	}

	return &Adjudicator{
		searcher:   searcher,
		engine:     engine,
		depth:      depth,
		maxResults: maxResults,
	}
}

// Verify runs the full workflow for one claim. Retrieval and engine
// failures are returned to the caller, which converts them into a Pending
// result; a noisy but parseable verdict degrades gracefully instead.
func (a *Adjudicator) Verify(ctx context.Context, claim model.Claim) (model.VerificationResult, error) {
	query := BuildQuery(claim)

	resp, err := a.searcher.Search(ctx, query, search.Options{
		Depth:      a.depth,
		MaxResults: a.maxResults,
	})
	if err != nil {
		return model.VerificationResult{}, err
	}

	evidence := FormatEvidence(resp.Results)
	sources := ExtractSources(resp.Results)

	prompt := fmt.Sprintf(verificationPromptTemplate, claim.Text, claim.Context, evidence)

	content, err := a.engine.Complete(ctx, llm.CompletionRequest{
		System:      verificationSystemPrompt,
		Prompt:      prompt,
		Temperature: adjudicationTemperature,
		MaxTokens:   adjudicationMaxTokens,
	})
	if err != nil {
		return model.VerificationResult{}, err
	}

	verdict, err := ParseVerdict(content)
	if err != nil {
		return model.VerificationResult{}, err
	}

	// Sources are always the retrieved evidence, independent of whatever
	// references the model text mentions.
	return model.VerificationResult{
		Claim:       claim,
		Status:      verdict.Status,
		Explanation: verdict.Explanation,
		CorrectInfo: verdict.CorrectInfo,
		Sources:     sources,
		Confidence:  verdict.Confidence,
	}, nil
}
