package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/claimlens/claimlens/internal/model"
	"github.com/claimlens/claimlens/internal/pipeline"
	"github.com/claimlens/claimlens/internal/report"
	"github.com/claimlens/claimlens/internal/store"
)

var (
	outJSON      string
	outMD        string
	checkTimeout time.Duration
	noCache      bool
	noFooter     bool
	noHistory    bool
	checkSources bool
	llmProvider  string
	llmModel     string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <document>",
	Short: "Fact-check a single document",
	Long: `Check extracts verifiable claims from a document (plain text, Markdown,
or HTML), searches the web for current evidence on each claim, and has the
reasoning engine adjudicate claim against evidence.

Required environment variables:
  TAVILY_API_KEY   search provider key
  GROQ_API_KEY     reasoning engine key (or OPENAI_API_KEY for --llm-provider openai)

Example:
  claimlens check report.txt
  claimlens check report.txt --json verdicts.json --md verdicts.md
  claimlens check report.html --check-sources --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	checkCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 10*time.Minute, "overall check timeout (increase for claim-dense documents)")
	checkCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable search cache (force fresh searches)")
	checkCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	checkCmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record this run in the history database")
	checkCmd.Flags().BoolVar(&checkSources, "check-sources", false, "verify that cited sources are still accessible")
	checkCmd.Flags().StringVar(&llmProvider, "llm-provider", "groq", "reasoning engine provider (groq, openai, ollama)")
	checkCmd.Flags().StringVar(&llmModel, "llm-model", "llama-3.1-8b-instant", "reasoning engine model name")
}

func runCheck(cmd *cobra.Command, args []string) error {
	docPath := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	p.Warn = func(warnErr error) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", warnErr)
	}
	p.Progress = func(current, total int, label string) {
		fmt.Fprintf(os.Stderr, "  [%d/%d] %s\n", current, total, label)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Checking: %s\n", docPath)
		fmt.Fprintf(os.Stderr, "Engine: %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
		fmt.Fprintln(os.Stderr)
	}

	result, err := p.CheckDocument(ctx, docPath)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	return renderAndRecord(cfg, result)
}

// buildConfig assembles the effective configuration from defaults, flags,
// and environment, and checks the API-key preconditions.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.Sources.Check = checkSources
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	cfg.History.Enabled = !noHistory
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	if cfg.Cache.Enabled {
		cfg.Cache.Dir = filepath.Join(dir, "cache")
	}
	if cfg.History.Path == "" {
		cfg.History.Path = filepath.Join(dir, "history.db")
	}

	cfg.Search.APIKey = os.Getenv("TAVILY_API_KEY")
	if cfg.Search.APIKey == "" {
		return nil, fmt.Errorf("TAVILY_API_KEY environment variable not set")
	}

	switch cfg.LLM.Provider {
	case "groq", "":
		cfg.LLM.APIKey = os.Getenv("GROQ_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY environment variable not set")
		}
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}

// renderAndRecord writes the report outputs and records the run in history
func renderAndRecord(cfg *model.Config, rep *model.Report) error {
	renderer := report.NewRenderer(cfg.Output.IncludeFooter)

	if outJSON != "" {
		if err := renderer.RenderJSON(rep, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}

	if outMD != "" {
		if err := renderer.RenderMarkdown(rep, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}

	if cfg.History.Enabled {
		if err := recordRun(cfg.History.Path, rep); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to record run history: %v\n", err)
		}
	}

	renderer.RenderSummary(rep, os.Stderr)
	return nil
}

func recordRun(path string, rep *model.Report) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	_, err = s.SaveRun(rep)
	return err
}
