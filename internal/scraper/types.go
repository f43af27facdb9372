package scraper

import "context"

// Source values recording where a listing came from
const (
	SourceReal = "real"
	SourceMock = "mock"
)

// Listing represents a single scraped classified ad
type Listing struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
	Source      string `json:"source"`
}

// Scraper interface defines the contract for listing sources
type Scraper interface {
	// Scrape retrieves listings from a source
	Scrape(ctx context.Context) ([]Listing, error)

	// Name returns the scraper's name for logging and identification
	Name() string
}
