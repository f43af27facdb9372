package cache

import (
	"time"
)

// CacheService is the store behind the fetch block key. A rate-limited run
// writes a TTL entry here so later runs back off without touching the site.
type CacheService interface {
	// Get retrieves a value from the cache
	Get(key string) ([]byte, error)

	// Set stores a value in the cache with an expiration time
	Set(key string, value []byte, expiration time.Duration) error

	// Delete removes a value from the cache
	Delete(key string) error
}
