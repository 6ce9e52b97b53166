// Package pagecache keeps rendered public pages in memory so that anonymous
// traffic does not hit the database on every request. Freshness is two-tier:
// entries expire after a TTL, and writers invalidate the affected paths
// immediately so admin edits show up without waiting for expiry.
package pagecache

import (
	"sync"
	"time"
)

type entry struct {
	body      []byte
	expiresAt time.Time
}

// Cache stores rendered HTML keyed by request path.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

// New creates a cache with the given entry TTL.
func New(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Get returns the cached body for path if it exists and has not expired.
func (c *Cache) Get(path string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.entries[path]
	c.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.body, true
}

// Set stores a rendered body for path.
func (c *Cache) Set(path string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[path] = entry{
		body:      body,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Invalidate drops the entries for the given paths.
func (c *Cache) Invalidate(paths ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range paths {
		delete(c.entries, p)
	}
}

// InvalidatePrefix drops every entry whose path starts with prefix. Used for
// detail pages where the writer does not know every cached child path.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for p := range c.entries {
		if len(p) >= len(prefix) && p[:len(prefix)] == prefix {
			delete(c.entries, p)
		}
	}
}

// Flush drops every entry. Site configuration feeds every page, so config
// writes flush the whole cache rather than track per-page dependencies.
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
}
