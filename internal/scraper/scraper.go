package scraper

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"olxcarcovers/config"
	"olxcarcovers/logger"
)

// fetchFunc matches Fetcher.Fetch so tests can substitute page bodies
type fetchFunc func(ctx context.Context, url string) (io.Reader, error)

// SiteScraper walks the search result pages of one site sequentially
type SiteScraper struct {
	SearchURL    string
	MaxPages     int
	RequestDelay time.Duration
	Parser       *Parser
	fetchFunc    fetchFunc
	log          *logger.Logger
}

// NewSiteScraper creates a scraper for the configured search URL
func NewSiteScraper(cfg *config.Config, fetcher *Fetcher, parser *Parser) *SiteScraper {
	return &SiteScraper{
		SearchURL:    cfg.SearchURL,
		MaxPages:     cfg.MaxPages,
		RequestDelay: cfg.RequestDelay,
		Parser:       parser,
		fetchFunc:    fetcher.Fetch,
		log:          logger.ForScraper("olx"),
	}
}

// Name returns the scraper's name for logging and identification
func (s *SiteScraper) Name() string {
	return "olx"
}

// Scrape fetches and parses the search pages in order. A fetch failure on
// any page discards everything collected so far and returns the error, so
// a run never mixes complete and broken page results. A page that parses
// to zero listings ends pagination early.
func (s *SiteScraper) Scrape(ctx context.Context) ([]Listing, error) {
	var listings []Listing

	for page := 1; page <= s.MaxPages; page++ {
		if page > 1 && s.RequestDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.RequestDelay):
			}
		}

		pageURL := s.pageURL(page)
		s.log.Info().Int("page", page).Str("url", pageURL).Msg("Fetching page")

		body, err := s.fetchFunc(ctx, pageURL)
		if err != nil {
			s.log.Warn().Int("page", page).Err(err).Msg("Fetch failed, discarding run")
			return nil, err
		}

		pageListings := s.Parser.Parse(body)
		if len(pageListings) == 0 {
			s.log.Info().Int("page", page).Msg("No listings on page, stopping")
			break
		}

		s.log.Info().Int("page", page).Int("count", len(pageListings)).Msg("Parsed page")
		listings = append(listings, pageListings...)
	}

	return listings, nil
}

// pageURL builds the URL for a result page; page 1 is the search URL itself
func (s *SiteScraper) pageURL(page int) string {
	if page == 1 {
		return s.SearchURL
	}
	sep := "?"
	if strings.Contains(s.SearchURL, "?") {
		sep = "&"
	}
	return s.SearchURL + sep + "page=" + strconv.Itoa(page)
}
