package cache

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/device-management-toolkit/redfish-inventory/internal/entity/document"
)

const (
	// CleanupInterval is how often expired cache entries are removed.
	CleanupInterval = 30 * time.Second
	// DefaultTTL is the default document lifetime if not specified in config.
	DefaultTTL = 30 * time.Second
	// DefaultRootTTL is the default service root lifetime if not specified in config.
	DefaultRootTTL = 10 * time.Minute
)

// Cache keeps decoded Redfish documents in memory so a resource referenced
// several times in one run, or across watch cycles, is fetched once per TTL.
// Only 200 OK documents are cached.
type Cache struct {
	store   *cache.Cache
	ttl     time.Duration
	rootTTL time.Duration
}

// New creates a new Cache instance using in-memory storage.
// If ttl is 0, caching is disabled for all documents.
// If rootTTL is 0, service roots use ttl.
func New(ttl, rootTTL time.Duration) *Cache {
	return &Cache{
		store:   cache.New(cache.NoExpiration, CleanupInterval),
		ttl:     ttl,
		rootTTL: rootTTL,
	}
}

// Set stores doc under key with the given TTL.
// If cache TTL is 0 (disabled), this is a no-op.
// If ttl parameter is 0, uses the default cache TTL.
// If ttl parameter is negative, caching is skipped for this specific item.
func (c *Cache) Set(key string, doc *document.Document, ttl time.Duration) {
	if c.ttl == 0 || doc == nil || !doc.OK() {
		return
	}

	if ttl == 0 {
		ttl = c.ttl
	} else if ttl < 0 {
		return
	}

	c.store.Set(key, doc, ttl)
}

// Get returns the document stored under key, if present and not expired.
func (c *Cache) Get(key string) (*document.Document, bool) {
	if c.ttl == 0 {
		return nil, false
	}

	v, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}

	doc, ok := v.(*document.Document)

	return doc, ok
}

// GetRootTTL returns the lifetime of cached service roots.
func (c *Cache) GetRootTTL() time.Duration {
	if c.rootTTL == 0 {
		return c.ttl
	}

	return c.rootTTL
}

// DeletePattern removes all keys with the given prefix. Watch uses it to drop
// member documents between cycles while service roots live out RootTTL.
func (c *Cache) DeletePattern(prefix string) {
	for key := range c.store.Items() {
		if strings.HasPrefix(key, prefix) {
			c.store.Delete(key)
		}
	}
}

// ItemCount returns the number of cached entries, expired or not.
func (c *Cache) ItemCount() int {
	return c.store.ItemCount()
}
