// Package cache provides the storage layers backing the search-response
// cache: an in-process memory layer, an optional disk layer, and a layered
// combination that promotes disk hits into memory.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a namespaced cache key from a search query
func Key(query string) string {
	hash := sha256.Sum256([]byte(query))
	return "claimlens:v1:" + hex.EncodeToString(hash[:])
}
