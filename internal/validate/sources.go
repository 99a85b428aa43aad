// Package validate checks the accessibility of the sources cited by
// verification results. This is a post-verification pass: it annotates
// sources and never changes a verdict.
package validate

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/claimlens/claimlens/internal/model"
)

// SourceChecker validates cited source links concurrently
type SourceChecker struct {
	httpClient *http.Client
	robots     *robotsChecker
	maxWorkers int
	userAgent  string
}

// NewSourceChecker creates a source checker
func NewSourceChecker(timeout time.Duration, maxWorkers int, userAgent string) *SourceChecker {
	if maxWorkers <= 0 {
		maxWorkers = 6
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &SourceChecker{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
		robots:     newRobotsChecker(userAgent, timeout),
		maxWorkers: maxWorkers,
		userAgent:  userAgent,
	}
}

// CheckAll annotates every cited source across the results with its
// accessibility. Sources disallowed by robots.txt are left unchecked.
func (c *SourceChecker) CheckAll(ctx context.Context, results []model.VerificationResult) {
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, c.maxWorkers)

	for i := range results {
		for j := range results[i].Sources {
			src := &results[i].Sources[j]
			if src.URL == "" {
				continue
			}

			wg.Add(1)
			go func(src *model.Source) {
				defer wg.Done()

				select {
				case <-ctx.Done():
					return
				case semaphore <- struct{}{}:
				}
				defer func() { <-semaphore }()

				c.checkOne(ctx, src)
			}(src)
		}
	}

	wg.Wait()
}

func (c *SourceChecker) checkOne(ctx context.Context, src *model.Source) {
	if !c.robots.allowed(ctx, src.URL) {
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, src.URL, nil)
	if err != nil {
		src.Checked = true
		return
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		src.Checked = true
		src.IsAccessible = false
		return
	}
	defer func() { _ = resp.Body.Close() }()

	src.Checked = true
	src.StatusCode = resp.StatusCode
	src.IsAccessible = resp.StatusCode >= 200 && resp.StatusCode < 400
}
