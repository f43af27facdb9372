package config

import (
	"net/url"
	"os"
	"strconv"
	"time"

	errs "olxcarcovers/pkg/errors"
)

// MaxPagesLimit is the upper bound for the pages setting
const MaxPagesLimit = 10

// Config represents the application configuration
type Config struct {
	// Target site
	BaseURL   string
	SearchURL string

	// Scraping settings
	MaxPages     int
	HTTPTimeout  time.Duration
	RequestDelay time.Duration
	UserAgent    string

	// Output settings
	OutputFile string

	// Mock data settings
	MockCount int

	// Memcache configuration (fetch block cache, disabled when addr is empty)
	MemcacheAddr string
	BlockTime    time.Duration

	// Redis configuration (listing stream sink, disabled when addr is empty)
	RedisAddr         string
	RedisDB           int
	RedisStream       string
	RedisStreamMaxLen int64

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() *Config {
	maxPages, _ := strconv.Atoi(getEnv("MAX_PAGES", "1"))
	httpTimeout, _ := strconv.Atoi(getEnv("HTTP_TIMEOUT_SECONDS", "10"))
	requestDelay, _ := strconv.Atoi(getEnv("REQUEST_DELAY_SECONDS", "2"))
	mockCount, _ := strconv.Atoi(getEnv("MOCK_LISTING_COUNT", "15"))
	blockTime, _ := strconv.Atoi(getEnv("BLOCK_SECONDS", "500"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	redisStreamMaxLen, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LEN", "500"))

	return &Config{
		BaseURL:           getEnv("BASE_URL", "https://www.olx.in"),
		SearchURL:         getEnv("SEARCH_URL", "https://www.olx.in/items/q-car-cover"),
		MaxPages:          maxPages,
		HTTPTimeout:       time.Duration(httpTimeout) * time.Second,
		RequestDelay:      time.Duration(requestDelay) * time.Second,
		UserAgent:         getEnv("USER_AGENT", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"),
		OutputFile:        getEnv("OUTPUT_CSV_FILE", "olx_car_covers.csv"),
		MockCount:         mockCount,
		MemcacheAddr:      getEnv("MEMCACHE_ADDR", ""),
		BlockTime:         time.Duration(blockTime) * time.Second,
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisDB:           redisDB,
		RedisStream:       getEnv("REDIS_STREAM", "carcovers"),
		RedisStreamMaxLen: int64(redisStreamMaxLen),
		Environment:       getEnv("SCRAPER_ENVIRONMENT", "development"),
	}
}

// Headers returns the browser-like request headers for page fetches.
// Accept-Encoding is left to the transport so gzip responses are
// decompressed transparently.
func (c *Config) Headers() map[string]string {
	return map[string]string{
		"User-Agent":      c.UserAgent,
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.5",
		"Connection":      "keep-alive",
	}
}

// Validate checks the configuration for values the scraper cannot run with
func (c *Config) Validate() error {
	if err := validateURL(c.SearchURL); err != nil {
		return err
	}
	if c.MaxPages < 1 || c.MaxPages > MaxPagesLimit {
		return errs.NewValidation("pages", "must be between 1 and "+strconv.Itoa(MaxPagesLimit))
	}
	if c.HTTPTimeout <= 0 {
		return errs.NewValidation("timeout", "must be positive")
	}
	if c.OutputFile == "" {
		return errs.NewValidation("output", "must not be empty")
	}
	if c.MockCount < 1 {
		return errs.NewValidation("mock count", "must be at least 1")
	}
	return nil
}

// validateURL checks that the search URL is an absolute http(s) URL
func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errs.NewConfiguration("invalid search URL", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errs.NewValidation("url", "scheme must be http or https")
	}
	if parsed.Host == "" {
		return errs.NewValidation("url", "missing host")
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
