package services

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

// ViewCache memoises derived views by ledger version and calendar day, so a
// key goes stale on its own when the ledger changes or the date rolls over.
// A nil *ViewCache is valid and caches nothing.
type ViewCache struct {
	cache *ristretto.Cache[string, any]
}

// NewViewCache builds a cache holding up to maxCost views. maxCost <= 0
// disables caching and returns nil.
func NewViewCache(maxCost int64) (*ViewCache, error) {
	if maxCost <= 0 {
		return nil, nil
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, any]{
		NumCounters: maxCost * 10,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create view cache: %w", err)
	}
	return &ViewCache{cache: cache}, nil
}

func viewKey(view string, version uint64, day string) string {
	return fmt.Sprintf("%s:%d:%s", view, version, day)
}

func (c *ViewCache) get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	return c.cache.Get(key)
}

func (c *ViewCache) set(key string, value any) {
	if c == nil {
		return
	}
	c.cache.Set(key, value, 1)
}

// Wait blocks until buffered writes are applied.
func (c *ViewCache) Wait() {
	if c != nil {
		c.cache.Wait()
	}
}

// Close stops the cache's background goroutines.
func (c *ViewCache) Close() {
	if c != nil {
		c.cache.Close()
	}
}
