package processor

import (
	"olxcarcovers/helpers"
	"olxcarcovers/internal/scraper"
	"olxcarcovers/logger"
)

// minTitleLength filters out listings whose title is too short to mean anything
const minTitleLength = 5

// Processor cleans, renders and exports listing batches
type Processor struct {
	log *logger.Logger
}

// NewProcessor creates a new processor
func NewProcessor() *Processor {
	return &Processor{
		log: logger.ForProcessor(),
	}
}

// Clean trims every field and collapses internal whitespace runs, so
// multi-line site markup never leaks into the table or the CSV.
func (p *Processor) Clean(listings []scraper.Listing) []scraper.Listing {
	cleaned := make([]scraper.Listing, 0, len(listings))
	for _, listing := range listings {
		listing.Title = helpers.CollapseWhitespace(listing.Title)
		listing.Description = helpers.CollapseWhitespace(listing.Description)
		listing.Price = helpers.CollapseWhitespace(listing.Price)
		cleaned = append(cleaned, listing)
	}
	return cleaned
}

// FilterValid drops listings without a meaningful title
func (p *Processor) FilterValid(listings []scraper.Listing) []scraper.Listing {
	valid := make([]scraper.Listing, 0, len(listings))
	for _, listing := range listings {
		if len([]rune(listing.Title)) > minTitleLength {
			valid = append(valid, listing)
		}
	}
	p.log.Info().Int("valid", len(valid)).Int("total", len(listings)).Msg("Filtered listings")
	return valid
}

// Stats summarizes a processed batch
type Stats struct {
	Total           int
	WithPrice       int
	WithDescription int
	Completeness    float64
}

// ComputeStats counts field coverage across the batch. Completeness is the
// share of listings carrying a price, in percent.
func ComputeStats(listings []scraper.Listing) Stats {
	stats := Stats{Total: len(listings)}
	for _, listing := range listings {
		if listing.Price != "" {
			stats.WithPrice++
		}
		if listing.Description != "" {
			stats.WithDescription++
		}
	}
	if stats.Total > 0 {
		stats.Completeness = float64(stats.WithPrice) / float64(stats.Total) * 100
	}
	return stats
}
