package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"olxcarcovers/config"
	"olxcarcovers/helpers"
	"olxcarcovers/logger"
	errs "olxcarcovers/pkg/errors"
	"olxcarcovers/services/cache"
)

// blockCacheKey marks the site as rate limited across runs
const blockCacheKey = "olx_rate_limited"

// Fetcher retrieves search pages over HTTP. When a cache service is present
// a rate-limited response blocks further fetches for BlockTime, so repeated
// runs back off instead of hammering the site.
type Fetcher struct {
	Client    *http.Client
	Headers   map[string]string
	CacheSvc  cache.CacheService
	CacheKey  string
	BlockTime time.Duration
}

// NewFetcher creates a fetcher from the configuration. cacheSvc may be nil.
func NewFetcher(cfg *config.Config, cacheSvc cache.CacheService) *Fetcher {
	return &Fetcher{
		Client:    &http.Client{Timeout: cfg.HTTPTimeout},
		Headers:   cfg.Headers(),
		CacheSvc:  cacheSvc,
		CacheKey:  blockCacheKey,
		BlockTime: cfg.BlockTime,
	}
}

// Fetch retrieves a single page as a UTF-8 reader, honoring an active block
func (f *Fetcher) Fetch(ctx context.Context, url string) (io.Reader, error) {
	if f.CacheSvc != nil && f.CacheKey != "" {
		if _, err := f.CacheSvc.Get(f.CacheKey); err == nil {
			return nil, errs.New(errs.ErrorTypeRateLimit, url, "blocked by earlier rate limit", nil)
		}
	}

	body, err := helpers.FetchPage(ctx, f.Client, url, f.Headers)
	if err != nil {
		if errs.IsRateLimit(err) && f.CacheSvc != nil && f.CacheKey != "" {
			logger.Warn("rate limited at %s, blocking fetches for %v", url, f.BlockTime)
			if cacheErr := f.CacheSvc.Set(f.CacheKey, []byte(fmt.Sprintf("%d", int(f.BlockTime/time.Second))), f.BlockTime); cacheErr != nil {
				logger.Warn("failed to set block key: %v", cacheErr)
			}
		}
		return nil, err
	}

	return body, nil
}
