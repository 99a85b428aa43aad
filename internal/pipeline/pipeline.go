// Package pipeline orchestrates the complete fact-check process: ingest a
// document, extract claims, verify each claim against web evidence, and
// assemble the report.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/claimlens/claimlens/internal/cache"
	"github.com/claimlens/claimlens/internal/extract"
	"github.com/claimlens/claimlens/internal/ingest"
	"github.com/claimlens/claimlens/internal/llm"
	"github.com/claimlens/claimlens/internal/model"
	"github.com/claimlens/claimlens/internal/search"
	"github.com/claimlens/claimlens/internal/validate"
	"github.com/claimlens/claimlens/internal/verify"
)

// Pipeline wires the extraction and verification stages together
type Pipeline struct {
	extractor *extract.ClaimExtractor
	verifier  *verify.BatchVerifier
	checker   *validate.SourceChecker // nil when source checking is disabled
	config    *model.Config

	// Progress receives per-claim progress during verification; optional.
	Progress verify.ProgressFunc

	// Warn receives recoverable pipeline warnings (chunk failures); optional.
	Warn func(err error)
}

// New creates a pipeline from configuration, constructing the search and
// reasoning-engine collaborators. API keys must already be present in the
// config; checking them is the caller's precondition.
func New(cfg *model.Config) (*Pipeline, error) {
	searcher, err := newSearchProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("search provider: %w", err)
	}

	engine, err := llm.NewProvider(llm.Config{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
		Timeout:  cfg.LLM.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM provider: %w", err)
	}

	adjudicator := verify.NewAdjudicator(searcher, engine, cfg.Search)

	p := &Pipeline{
		extractor: extract.NewClaimExtractor(engine, cfg.Extraction),
		verifier:  verify.NewBatchVerifier(adjudicator, cfg.RateLimit.ClaimsPerSecond, cfg.RateLimit.Burst),
		config:    cfg,
	}

	if cfg.Sources.Check {
		p.checker = validate.NewSourceChecker(cfg.Sources.Timeout, cfg.Sources.Workers, cfg.HTTP.UserAgent)
	}

	p.extractor.Warn = func(err error) { p.warn(err) }

	return p, nil
}

func newSearchProvider(cfg *model.Config) (search.Provider, error) {
	provider, err := search.NewTavilyProvider(
		cfg.Search.APIKey,
		cfg.Search.BaseURL,
		cfg.HTTP.UserAgent,
		cfg.HTTP.Timeout,
	)
	if err != nil {
		return nil, err
	}

	if !cfg.Cache.Enabled {
		return provider, nil
	}

	var store cache.Cache
	if cfg.Cache.Dir != "" {
		store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	} else {
		store = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
	}

	return search.NewCachedProvider(provider, store, cfg.Cache.DiskTTL), nil
}

// CheckDocument runs the full pipeline over one document file
func (p *Pipeline) CheckDocument(ctx context.Context, path string) (*model.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ingest.Error{Path: path, Err: err}
	}

	pages, err := ingest.ForPath(path).Extract(data)
	if err != nil {
		return nil, err
	}

	claims, err := p.extractor.Extract(ctx, pages)
	if err != nil {
		return nil, fmt.Errorf("extract claims: %w", err)
	}

	results := p.verifier.VerifyClaims(ctx, claims, p.Progress)

	if p.checker != nil {
		p.checker.CheckAll(ctx, results)
	}

	report := &model.Report{
		Document:   filepath.Base(path),
		CheckedAt:  time.Now().UTC(),
		PageCount:  len(pages),
		ChunkCount: p.extractor.ChunkCount(pages),
		Claims:     claims,
		Results:    results,
	}
	report.Summarize()

	return report, nil
}

func (p *Pipeline) warn(err error) {
	if p.Warn != nil {
		p.Warn(err)
	}
}
