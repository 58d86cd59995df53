// Package cache implements a small in-memory render cache for the dev
// server. It stores rendered pages keyed by their inputs and supports
// dependency-based invalidation when a watched source file changes.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Cache stores rendered page bytes with LRU-bounded capacity.
type Cache struct {
	mu         sync.RWMutex
	maxEntries int
	entries    map[string]*entry
	stats      Stats
}

type entry struct {
	data       []byte
	deps       map[string]bool
	lastAccess time.Time
}

// Stats tracks cache performance metrics
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Entries   int
}

// DefaultMaxEntries bounds the cache when no explicit size is given.
const DefaultMaxEntries = 256

// New creates a cache holding at most maxEntries rendered pages.
func New(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Cache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

// Key builds a cache key from the page's identifying inputs.
func Key(parts ...string) string {
	h := sha256.New()
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached bytes for key.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		return nil, false
	}

	e.lastAccess = time.Now()
	c.stats.Hits++
	return e.data, true
}

// Put stores data under key, recording the file paths it was rendered
// from so InvalidateByDependency can drop it later.
func (c *Cache) Put(key string, data []byte, deps ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		if _, exists := c.entries[key]; !exists {
			c.evictOldest()
		}
	}

	depSet := make(map[string]bool, len(deps))
	for _, dep := range deps {
		depSet[dep] = true
	}

	c.entries[key] = &entry{
		data:       data,
		deps:       depSet,
		lastAccess: time.Now(),
	}
}

// InvalidateByDependency removes every entry rendered from the given file
// and returns how many were dropped.
func (c *Cache) InvalidateByDependency(path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var dropped int
	for key, e := range c.entries {
		if e.deps[path] {
			delete(c.entries, key)
			dropped++
		}
	}
	return dropped
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}

// GetStats returns a snapshot of the cache metrics.
func (c *Cache) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := c.stats
	stats.Entries = len(c.entries)
	return stats
}

// evictOldest removes the least recently used entry. Caller holds the lock.
func (c *Cache) evictOldest() {
	var oldestKey string
	var oldest time.Time

	for key, e := range c.entries {
		if oldestKey == "" || e.lastAccess.Before(oldest) {
			oldestKey = key
			oldest = e.lastAccess
		}
	}

	if oldestKey != "" {
		delete(c.entries, oldestKey)
		c.stats.Evictions++
	}
}
