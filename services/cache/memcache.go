package cache

import (
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

// MemcacheService implements CacheService on memcached. The scraper keeps
// only small TTL entries here (the fetch block key), never page bodies.
type MemcacheService struct {
	mc *memcache.Client
}

var _ CacheService = (*MemcacheService)(nil)

// NewMemcacheService creates a cache service for the given server address
func NewMemcacheService(serverAddr string) *MemcacheService {
	return &MemcacheService{
		mc: memcache.New(serverAddr),
	}
}

// Get retrieves a value; a miss is returned as an error
func (m *MemcacheService) Get(key string) ([]byte, error) {
	item, err := m.mc.Get(key)
	if err != nil {
		return nil, err
	}
	return item.Value, nil
}

// Set stores a value with an expiration. Memcached counts expirations in
// whole seconds, so sub-second durations round down to no expiry.
func (m *MemcacheService) Set(key string, value []byte, expiration time.Duration) error {
	return m.mc.Set(&memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: int32(expiration.Seconds()),
	})
}

// Delete removes a value
func (m *MemcacheService) Delete(key string) error {
	return m.mc.Delete(key)
}
