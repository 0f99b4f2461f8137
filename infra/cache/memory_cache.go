package cache

import (
	"sync"
	"time"

	"github.com/mfadel/papertrade/pkg/domain/trading"
)

// MemoryCache implements cache.QuoteCache using in-memory storage.
type MemoryCache struct {
	cache map[string]*cacheEntry
	mu    sync.RWMutex
}

// NewMemoryCache creates a new in-memory quote cache.
func NewMemoryCache() *MemoryCache {
	c := &MemoryCache{
		cache: make(map[string]*cacheEntry),
	}

	// Start cleanup goroutine
	go c.cleanup()

	return c
}

// Get retrieves a quote from cache. A miss or an expired entry returns nil.
func (c *MemoryCache) Get(key string) (*trading.Quote, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.cache[key]
	if !exists {
		return nil, nil
	}

	if time.Now().After(entry.expiresAt) {
		return nil, nil
	}

	return entry.quote, nil
}

// Set stores a quote in cache with TTL.
func (c *MemoryCache) Set(key string, quote *trading.Quote, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[key] = &cacheEntry{
		quote:     quote,
		expiresAt: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes a quote from cache.
func (c *MemoryCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.cache, key)
	return nil
}

// cleanup removes expired entries from cache.
func (c *MemoryCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for key, entry := range c.cache {
			if now.After(entry.expiresAt) {
				delete(c.cache, key)
			}
		}
		c.mu.Unlock()
	}
}

type cacheEntry struct {
	quote     *trading.Quote
	expiresAt time.Time
}
