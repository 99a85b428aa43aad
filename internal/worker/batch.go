// Package worker runs multiple documents through the fact-check pipeline
// concurrently. Concurrency exists only across documents; within a document
// claims are always verified sequentially.
package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/claimlens/claimlens/internal/model"
)

// Checker defines the interface for fact-checking a single document
type Checker interface {
	CheckDocument(ctx context.Context, path string) (*model.Report, error)
}

// DocumentJob fact-checks one document
type DocumentJob struct {
	Path    string
	Checker Checker
}

// Execute runs the job
func (j *DocumentJob) Execute(ctx context.Context) Result {
	report, err := j.Checker.CheckDocument(ctx, j.Path)
	return &DocumentResult{
		Path:   j.Path,
		Report: report,
		Error:  err,
	}
}

// DocumentResult is the outcome of checking one document
type DocumentResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the error from the result
func (r *DocumentResult) GetError() error {
	return r.Error
}

// BatchProcessor fact-checks multiple documents concurrently
type BatchProcessor struct {
	checker     Checker
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(checker Checker, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		checker:     checker,
		concurrency: concurrency,
	}
}

// ProcessPaths checks the given document paths concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*DocumentResult {
	if len(paths) == 0 {
		return []*DocumentResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&DocumentJob{Path: path, Checker: b.checker})
	}

	results := pool.Wait()

	docResults := make([]*DocumentResult, len(results))
	for i, result := range results {
		docResults[i] = result.(*DocumentResult)
	}

	return docResults
}

// ProcessFile reads document paths from a list file (one per line, # for
// comments) and checks them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string) ([]*DocumentResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads document paths from a file, skipping blanks,
// comments, and duplicates
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
