// Package extract turns document pages into verifiable claims. The combined
// page text is chunked and each chunk is submitted to the reasoning engine
// with a JSON-only extraction prompt; responses go through the same
// noisy-JSON recovery as verdict parsing, targeting an array.
package extract

import (
	"context"
	"fmt"

	"github.com/claimlens/claimlens/internal/ingest"
	"github.com/claimlens/claimlens/internal/jsonx"
	"github.com/claimlens/claimlens/internal/llm"
	"github.com/claimlens/claimlens/internal/model"
)

const extractionTemperature = 0.1

// ChunkError reports a failed extraction for one chunk. Chunk failures are
// reported through the extractor's warn hook and never abort extraction of
// the remaining chunks.
type ChunkError struct {
	Chunk int // 1-based
	Total int
	Err   error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("extract chunk %d/%d: %v", e.Chunk, e.Total, e.Err)
}

func (e *ChunkError) Unwrap() error { return e.Err }

// ClaimExtractor extracts claims from document pages via the reasoning engine
type ClaimExtractor struct {
	engine      llm.Provider
	chunkSize   int
	chunkStride int
	maxTokens   int

	// Warn receives per-chunk failures; nil discards them. The extractor
	// itself never writes to any output stream.
	Warn func(err error)
}

// NewClaimExtractor creates a claim extractor
func NewClaimExtractor(engine llm.Provider, cfg model.ExtractionConfig) *ClaimExtractor {
	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = 12000
	}
	chunkStride := cfg.ChunkStride
	if chunkStride <= 0 || chunkStride > chunkSize {
		chunkStride = 10000
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4000
	}

	return &ClaimExtractor{
		engine:      engine,
		chunkSize:   chunkSize,
		chunkStride: chunkStride,
		maxTokens:   maxTokens,
	}
}

// Extract returns the claims found across all chunks, in chunk-then-emission
// order. An empty result is valid: it signals that no verifiable claims were
// found, not an error.
func (e *ClaimExtractor) Extract(ctx context.Context, pages []ingest.Page) ([]model.Claim, error) {
	buffer := BuildBuffer(pages)
	if buffer.Len() == 0 {
		return nil, nil
	}

	chunks := buffer.Chunks(e.chunkSize, e.chunkStride)

	var claims []model.Claim
	for i, chunk := range chunks {
		chunkClaims, err := e.extractChunk(ctx, buffer, chunk)
		if err != nil {
			e.warn(&ChunkError{Chunk: i + 1, Total: len(chunks), Err: err})
			continue
		}
		claims = append(claims, chunkClaims...)
	}

	return claims, nil
}

// ChunkCount reports how many chunks the given pages would produce
func (e *ClaimExtractor) ChunkCount(pages []ingest.Page) int {
	buffer := BuildBuffer(pages)
	if buffer.Len() == 0 {
		return 0
	}
	return len(buffer.Chunks(e.chunkSize, e.chunkStride))
}

func (e *ClaimExtractor) extractChunk(ctx context.Context, buffer *Buffer, chunk Chunk) ([]model.Claim, error) {
	content, err := e.engine.Complete(ctx, llm.CompletionRequest{
		System:      extractionSystemPrompt,
		Prompt:      extractionPrompt + chunk.Text,
		Temperature: extractionTemperature,
		MaxTokens:   e.maxTokens,
	})
	if err != nil {
		return nil, err
	}

	var claims []model.Claim
	for _, entry := range jsonx.Array(content) {
		text := jsonx.String(entry, "claim", "")
		if text == "" {
			continue
		}

		claims = append(claims, model.Claim{
			Text:       text,
			Context:    jsonx.String(entry, "context", ""),
			PageNumber: attributePage(buffer, chunk, text),
			ClaimType:  jsonx.String(entry, "claim_type", model.ClaimTypeFactual),
		})
	}

	return claims, nil
}

// attributePage maps a claim back to the page it came from by locating its
// text within the chunk. Claims the model paraphrased beyond recognition
// fall back to the first page the chunk covers.
func attributePage(buffer *Buffer, chunk Chunk, claimText string) int {
	if idx := chunk.locate(claimText); idx >= 0 {
		return buffer.PageAt(chunk.Start + idx)
	}
	return buffer.PageAt(chunk.Start)
}

func (e *ClaimExtractor) warn(err error) {
	if e.Warn != nil {
		e.Warn(err)
	}
}
