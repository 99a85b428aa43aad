package model

import "time"

// Config is the complete claimlens configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Search      SearchConfig      `yaml:"search"`
	LLM         LLMConfig         `yaml:"llm"`
	Extraction  ExtractionConfig  `yaml:"extraction"`
	Cache       CacheConfig       `yaml:"cache"`
	Sources     SourceCheckConfig `yaml:"sources"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	History     HistoryConfig     `yaml:"history"`
	Output      OutputConfig      `yaml:"output"`
}

// HTTPConfig holds settings shared by all outbound HTTP clients
type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// SearchConfig configures the evidence retriever
type SearchConfig struct {
	Provider   string `yaml:"provider"` // "tavily"
	APIKey     string `yaml:"-"`        // From TAVILY_API_KEY, never persisted
	BaseURL    string `yaml:"base_url,omitempty"`
	Depth      string `yaml:"depth"`       // "basic" or "advanced"
	MaxResults int    `yaml:"max_results"` // Fixed policy: 5
}

// LLMConfig configures the reasoning engine
type LLMConfig struct {
	Provider string `yaml:"provider"` // "groq", "openai", "ollama"
	Model    string `yaml:"model"`
	APIKey   string `yaml:"-"` // From env, never persisted
	BaseURL  string `yaml:"base_url,omitempty"`
	Timeout  int    `yaml:"timeout"` // seconds
}

// ExtractionConfig configures document chunking for claim extraction
type ExtractionConfig struct {
	ChunkSize   int `yaml:"chunk_size"`   // Window size in characters
	ChunkStride int `yaml:"chunk_stride"` // Advance per chunk; overlap = size - stride
	MaxTokens   int `yaml:"max_tokens"`   // Output budget per extraction call
}

// CacheConfig configures search-response caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir,omitempty"` // Disk layer; empty = memory only
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// SourceCheckConfig configures post-verification source accessibility checks
type SourceCheckConfig struct {
	Check   bool          `yaml:"check"`
	Timeout time.Duration `yaml:"timeout"`
	Workers int           `yaml:"workers"`
}

// ConcurrencyConfig configures the multi-document batch command.
// Claims within a document are always verified sequentially.
type ConcurrencyConfig struct {
	Documents int `yaml:"documents"`
}

// RateLimitConfig paces claim adjudication round-trips
type RateLimitConfig struct {
	ClaimsPerSecond float64 `yaml:"claims_per_second"`
	Burst           int     `yaml:"burst"`
}

// HistoryConfig configures the run-history store
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path,omitempty"` // Default: ~/.claimlens/history.db
}

// OutputConfig configures report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "Claimlens/0.1 (+https://github.com/claimlens/claimlens)",
		},
		Search: SearchConfig{
			Provider:   "tavily",
			Depth:      "advanced",
			MaxResults: 5,
		},
		LLM: LLMConfig{
			Provider: "groq",
			Model:    "llama-3.1-8b-instant",
			Timeout:  30,
		},
		Extraction: ExtractionConfig{
			ChunkSize:   12000,
			ChunkStride: 10000,
			MaxTokens:   4000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Sources: SourceCheckConfig{
			Check:   false,
			Timeout: 10 * time.Second,
			Workers: 6,
		},
		Concurrency: ConcurrencyConfig{
			Documents: 2,
		},
		RateLimit: RateLimitConfig{
			ClaimsPerSecond: 0.5,
			Burst:           1,
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
