package cache

import (
	"github.com/device-management-toolkit/redfish-inventory/config"
)

// NewFromConfig builds the document cache from the Cache section. A zero
// TTL turns all caching off, service roots included. A zero RootTTL makes
// roots follow TTL.
func NewFromConfig(cfg *config.Config) *Cache {
	return New(cfg.Cache.TTL, cfg.Cache.RootTTL)
}
