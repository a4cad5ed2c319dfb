package definition

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoises successful loads per source. Concurrent loads of the same
// source share one read. Failed loads are not cached.
//
// Cached definitions are shared between callers; treat them as immutable.
type Cache struct {
	loader Loader
	group  singleflight.Group

	mu      sync.RWMutex
	entries map[string]Definition
}

var _ Loader = (*Cache)(nil)

// NewCache wraps loader. It panics if loader is nil.
func NewCache(loader Loader) *Cache {
	if loader == nil {
		panic("definition: cache requires a loader")
	}
	return &Cache{
		loader:  loader,
		entries: make(map[string]Definition),
	}
}

func cacheKey(src Source) string {
	return string(src.Kind()) + ":" + src.Location()
}

// Load returns the cached definition for src, loading it on a miss.
func (c *Cache) Load(ctx context.Context, src Source) (Definition, error) {
	if src == nil {
		return c.loader.Load(ctx, src)
	}
	key := cacheKey(src)

	c.mu.RLock()
	def, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return def, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		def, err := c.loader.Load(ctx, src)
		if err != nil {
			return Definition{}, err
		}
		c.mu.Lock()
		c.entries[key] = def
		c.mu.Unlock()
		return def, nil
	})
	if err != nil {
		return Definition{}, err
	}
	return v.(Definition), nil
}

// Forget drops the entry for src.
func (c *Cache) Forget(src Source) {
	if src == nil {
		return
	}
	key := cacheKey(src)
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	c.group.Forget(key)
}

// Reset drops every entry.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.entries = make(map[string]Definition)
	c.mu.Unlock()
}

// Len reports the number of cached definitions.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
