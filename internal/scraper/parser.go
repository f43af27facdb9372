package scraper

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"olxcarcovers/logger"
)

// Parser extracts listings from search result HTML
type Parser struct {
	Selectors Selectors
	log       *logger.Logger
}

// NewParser creates a parser for the given selector set
func NewParser(selectors Selectors) *Parser {
	return &Parser{
		Selectors: selectors,
		log:       logger.ForScraper("parser"),
	}
}

// Parse extracts listings from the HTML document in reader. Unreadable or
// unrecognized markup yields an empty result, never an error; an empty page
// is a signal the caller acts on.
func (p *Parser) Parse(reader io.Reader) []Listing {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		p.log.Debug().Err(err).Msg("Body is not parseable as HTML")
		return nil
	}

	containers := p.findContainers(doc)
	if containers == nil {
		p.log.Debug().Msg("No listing containers matched")
		return nil
	}

	var listings []Listing
	containers.Each(func(_ int, s *goquery.Selection) {
		if listing := p.processListing(s); listing != nil {
			listings = append(listings, *listing)
		}
	})

	return listings
}

// findContainers tries each container selector in order until one matches
func (p *Parser) findContainers(doc *goquery.Document) *goquery.Selection {
	for _, selector := range p.Selectors.Containers {
		sel := doc.Find(selector)
		if sel.Length() > 0 {
			p.log.Debug().Str("selector", selector).Int("count", sel.Length()).Msg("Containers matched")
			return sel
		}
	}
	return nil
}

// processListing extracts a single listing from a container element.
// Listings without a title are dropped; other fields default to empty.
func (p *Parser) processListing(s *goquery.Selection) *Listing {
	title := p.extractText(s, p.Selectors.Title)
	if title == "" {
		return nil
	}

	return &Listing{
		Title:       title,
		Description: p.extractText(s, p.Selectors.Description),
		Price:       p.extractText(s, p.Selectors.Price),
		Source:      SourceReal,
	}
}

// extractText returns the trimmed text of the first element matching selector
func (p *Parser) extractText(s *goquery.Selection, selector string) string {
	sel := s.Find(selector)
	if sel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(sel.First().Text())
}
