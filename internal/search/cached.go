package search

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/claimlens/claimlens/internal/cache"
)

// CachedProvider wraps a Provider with a response cache keyed by the query
// string. Repeated verifications of the same document hit the cache instead
// of spending search quota. Cache failures degrade to a live search.
type CachedProvider struct {
	inner Provider
	store cache.Cache
	ttl   time.Duration
}

// NewCachedProvider wraps inner with the given cache
func NewCachedProvider(inner Provider, store cache.Cache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{inner: inner, store: store, ttl: ttl}
}

// Name returns the wrapped provider's name
func (p *CachedProvider) Name() string { return p.inner.Name() }

// Search returns a cached response when available, otherwise forwards to the
// wrapped provider and caches the result
func (p *CachedProvider) Search(ctx context.Context, query string, opts Options) (*Response, error) {
	key := cache.Key(fmt.Sprintf("%s|%s|%d|%s", p.inner.Name(), opts.Depth, opts.MaxResults, query))

	if data, found := p.store.Get(key); found {
		var resp Response
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
		// Corrupt entry: drop it and search live
		_ = p.store.Delete(key)
	}

	resp, err := p.inner.Search(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(resp); err == nil {
		_ = p.store.Set(key, data, p.ttl)
	}

	return resp, nil
}
