// Package loadcache tracks which variant URLs have finished loading in the
// current session, so returning to a page skips the blur placeholder and
// paints the real image immediately.
package loadcache

import "sync"

// Cache is a session-lifetime set of loaded variant URLs. It is owned by
// its creator, never persisted, and unbounded: the manifest is tens to low
// hundreds of entries, so eviction would buy nothing.
type Cache struct {
	mu     sync.RWMutex
	loaded map[string]struct{}
}

// New creates an empty cache for a fresh session.
func New() *Cache {
	return &Cache{loaded: make(map[string]struct{})}
}

// IsLoaded reports whether the URL completed loading this session.
func (c *Cache) IsLoaded(url string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.loaded[url]
	return ok
}

// MarkLoaded records a completed load. Marking twice is the same as
// marking once; load callbacks may fire in any order.
func (c *Cache) MarkLoaded(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded[url] = struct{}{}
}

// Len reports how many distinct URLs have been marked.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.loaded)
}
