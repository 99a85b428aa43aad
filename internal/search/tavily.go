package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// defaultTavilyBaseURL is the Tavily search endpoint. Overridable via config
// so tests can substitute an httptest server.
const defaultTavilyBaseURL = "https://api.tavily.com"

// TavilyProvider implements the Provider interface for the Tavily search API
type TavilyProvider struct {
	apiKey     string
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

type tavilyRequest struct {
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth,omitempty"`
	MaxResults  int    `json:"max_results,omitempty"`
}

type tavilyResult struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

type tavilyResponse struct {
	Query   string         `json:"query"`
	Results []tavilyResult `json:"results"`
}

type tavilyError struct {
	Detail struct {
		Error string `json:"error"`
	} `json:"detail"`
}

// NewTavilyProvider creates a new Tavily provider
func NewTavilyProvider(apiKey, baseURL, userAgent string, timeout time.Duration) (*TavilyProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Tavily API key is required")
	}

	if baseURL == "" {
		baseURL = defaultTavilyBaseURL
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &TavilyProvider{
		apiKey:    apiKey,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Name returns the provider name
func (p *TavilyProvider) Name() string { return "tavily" }

// Search runs a query against the Tavily API. Any transport or API failure
// is wrapped in a RetrievalError.
func (p *TavilyProvider) Search(ctx context.Context, query string, opts Options) (*Response, error) {
	body, err := json.Marshal(tavilyRequest{
		Query:       query,
		SearchDepth: string(opts.Depth),
		MaxResults:  opts.MaxResults,
	})
	if err != nil {
		return nil, &RetrievalError{Provider: p.Name(), Err: fmt.Errorf("marshal request: %w", err)}
	}

	url := p.baseURL + "/search"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &RetrievalError{Provider: p.Name(), Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	httpResp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, &RetrievalError{Provider: p.Name(), Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &RetrievalError{Provider: p.Name(), Err: fmt.Errorf("read response: %w", err)}
	}

	if httpResp.StatusCode != http.StatusOK {
		var apiErr tavilyError
		if jsonErr := json.Unmarshal(respBody, &apiErr); jsonErr == nil && apiErr.Detail.Error != "" {
			return nil, &RetrievalError{
				Provider: p.Name(),
				Err:      fmt.Errorf("API error (%d): %s", httpResp.StatusCode, apiErr.Detail.Error),
			}
		}
		return nil, &RetrievalError{
			Provider: p.Name(),
			Err:      fmt.Errorf("API error (%d): %s", httpResp.StatusCode, string(respBody)),
		}
	}

	var resp tavilyResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, &RetrievalError{Provider: p.Name(), Err: fmt.Errorf("unmarshal response: %w", err)}
	}

	results := make([]Result, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, Result{
			Title:   r.Title,
			URL:     r.URL,
			Content: r.Content,
			Score:   r.Score,
		})
	}

	return &Response{Query: resp.Query, Results: results}, nil
}
