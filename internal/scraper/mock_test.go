package scraper

import (
	"time"

	"olxcarcovers/services/cache"
)

// MockCacheService implements an in-memory block cache for testing
type MockCacheService struct {
	entries map[string][]byte
}

// Ensure MockCacheService implements cache.CacheService
var _ cache.CacheService = (*MockCacheService)(nil)

func NewMockCacheService() *MockCacheService {
	return &MockCacheService{
		entries: make(map[string][]byte),
	}
}

func (m *MockCacheService) Get(key string) ([]byte, error) {
	if val, ok := m.entries[key]; ok {
		return val, nil
	}
	return nil, &mockError{message: "cache miss"}
}

func (m *MockCacheService) Set(key string, value []byte, expiration time.Duration) error {
	m.entries[key] = value
	return nil
}

func (m *MockCacheService) Delete(key string) error {
	delete(m.entries, key)
	return nil
}

type mockError struct {
	message string
}

func (e *mockError) Error() string {
	return e.message
}
