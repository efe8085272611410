package api

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/text/cases"
)

// DefaultCacheTTL is how long a response is reused for the same word.
const DefaultCacheTTL = time.Hour

// ResponseCache is an in-memory cache of raw API responses, keyed by
// reference and case-folded word.
type ResponseCache struct {
	cache *cache.Cache
}

// NewResponseCache creates a cache whose entries expire after ttl.
// A non-positive ttl selects DefaultCacheTTL.
func NewResponseCache(ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResponseCache{cache: cache.New(ttl, 2*ttl)}
}

func cacheKey(ref Reference, word string) string {
	return string(ref) + ":" + cases.Fold().String(strings.TrimSpace(word))
}

// Get returns the cached body for word, if present and unexpired.
func (c *ResponseCache) Get(ref Reference, word string) ([]byte, bool) {
	val, found := c.cache.Get(cacheKey(ref, word))
	if !found {
		return nil, false
	}
	body, ok := val.([]byte)
	return body, ok
}

// Set stores body for word with the default expiration.
func (c *ResponseCache) Set(ref Reference, word string, body []byte) {
	c.cache.SetDefault(cacheKey(ref, word), body)
}

// Len returns the number of cached responses, including expired ones not yet purged.
func (c *ResponseCache) Len() int {
	return c.cache.ItemCount()
}

// Flush removes every cached response.
func (c *ResponseCache) Flush() {
	c.cache.Flush()
}
