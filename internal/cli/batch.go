package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/claimlens/claimlens/internal/pipeline"
	"github.com/claimlens/claimlens/internal/report"
	"github.com/claimlens/claimlens/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir|listfile>",
	Short: "Fact-check multiple documents in parallel",
	Long: `Batch fact-checks several documents concurrently:
- Read documents from a directory (txt, md, html) or a list file (one path per line)
- Check documents in parallel with a configurable worker count
- Within each document, claims are verified strictly sequentially
- Generate individual JSON and Markdown reports per document

Example:
  claimlens batch ./docs
  claimlens batch paths.txt --concurrency 4 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 2, "number of documents checked in parallel")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./claimlens-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 1*time.Hour, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable search cache (force fresh searches)")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	batchCmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record runs in the history database")
	batchCmd.Flags().BoolVar(&checkSources, "check-sources", false, "verify that cited sources are still accessible")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "groq", "reasoning engine provider (groq, openai, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "llama-3.1-8b-instant", "reasoning engine model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Documents = concurrency

	paths, err := resolveDocuments(input)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no documents found in %s", input)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	p.Warn = func(warnErr error) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", warnErr)
	}

	fmt.Fprintf(os.Stderr, "⚙️  Checking %d documents with %d workers...\n\n", len(paths), concurrency)

	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Documents)
	results := processor.ProcessPaths(ctx, paths)

	renderer := report.NewRenderer(cfg.Output.IncludeFooter)
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		successCount++

		slug := strings.TrimSuffix(filepath.Base(result.Path), filepath.Ext(result.Path))
		if err := renderer.RenderJSON(result.Report, filepath.Join(outputDir, slug+".json")); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.Path, err)
			continue
		}
		if err := renderer.RenderMarkdown(result.Report, filepath.Join(outputDir, slug+".md")); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write Markdown: %v\n", result.Path, err)
			continue
		}

		if cfg.History.Enabled {
			if err := recordRun(cfg.History.Path, result.Report); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to record run history: %v\n", err)
			}
		}

		fmt.Fprintf(os.Stderr, "✓ %s (%d claims, %d verified)\n",
			result.Report.Document, result.Report.Summary.Total, result.Report.Summary.Verified)
	}

	fmt.Fprintf(os.Stderr, "\n  Total:     %d documents\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n\n", outputDir)

	return nil
}

// resolveDocuments expands a directory into its checkable documents, or
// reads a list file of paths
func resolveDocuments(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	if !info.IsDir() {
		return worker.ReadPathsFromFile(input)
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".md", ".html", ".htm":
			paths = append(paths, filepath.Join(input, entry.Name()))
		}
	}
	sort.Strings(paths)

	return paths, nil
}
