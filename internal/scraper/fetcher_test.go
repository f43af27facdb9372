package scraper

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "olxcarcovers/pkg/errors"
)

func newTestFetcher(cacheSvc *MockCacheService) *Fetcher {
	return &Fetcher{
		Client:    &http.Client{Timeout: 2 * time.Second},
		Headers:   map[string]string{"User-Agent": "test-agent"},
		CacheSvc:  cacheSvc,
		CacheKey:  "olx_rate_limited",
		BlockTime: 1 * time.Second,
	}
}

func TestFetcherFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	fetcher := newTestFetcher(NewMockCacheService())

	reader, err := fetcher.Fetch(context.Background(), server.URL)
	assert.NoError(t, err)

	body, err := io.ReadAll(reader)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "ok")
}

func TestFetcherNilCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	// A fetcher without a cache service must still work
	fetcher := &Fetcher{
		Client:    &http.Client{Timeout: 2 * time.Second},
		Headers:   map[string]string{"User-Agent": "test-agent"},
		BlockTime: 1 * time.Second,
	}

	_, err := fetcher.Fetch(context.Background(), server.URL)
	assert.NoError(t, err)
}

func TestFetcherBlockedByCache(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	cacheSvc := NewMockCacheService()
	cacheSvc.Set("olx_rate_limited", []byte("500"), 1*time.Second)

	fetcher := newTestFetcher(cacheSvc)

	// The block key short-circuits the fetch before any request is made
	_, err := fetcher.Fetch(context.Background(), server.URL)
	assert.Error(t, err)
	assert.True(t, errs.IsRateLimit(err))
	assert.Equal(t, 0, requests, "Blocked fetch must not hit the network")
}

func TestFetcherSetsBlockOnRateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "60")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	cacheSvc := NewMockCacheService()
	fetcher := newTestFetcher(cacheSvc)

	_, err := fetcher.Fetch(context.Background(), server.URL)
	assert.Error(t, err)
	assert.True(t, errs.IsRateLimit(err))

	// The rate limit left a block key behind
	_, err = cacheSvc.Get("olx_rate_limited")
	assert.NoError(t, err, "Block key should be set after a 429")
}

func TestFetcherStatusErrorDoesNotBlock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	cacheSvc := NewMockCacheService()
	fetcher := newTestFetcher(cacheSvc)

	_, err := fetcher.Fetch(context.Background(), server.URL)
	assert.Error(t, err)
	assert.True(t, errs.IsFetch(err))
	assert.False(t, errs.IsRateLimit(err))

	// Ordinary status errors must not set the block key
	_, err = cacheSvc.Get("olx_rate_limited")
	assert.Error(t, err)
}
