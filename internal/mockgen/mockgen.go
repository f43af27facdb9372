package mockgen

import (
	mathrand "math/rand"
	"time"

	"olxcarcovers/internal/scraper"
)

// Candidate pools for generated listings
var (
	titles = []string{
		"Premium Car Cover for Sedan",
		"All-Weather SUV Car Body Cover",
		"Dustproof Hatchback Cover",
		"Waterproof Car Cover with Mirror Pockets",
		"UV Protection Car Body Cover",
		"Heavy Duty Silver Coated Cover",
		"Compact Car Body Cover",
		"Outdoor Monsoon Car Cover",
		"Elastic Fit Car Body Cover",
		"Breathable Car Cover",
	}

	features = []string{
		"Waterproof, UV Protection, Dustproof",
		"Heavy duty, mirror pockets",
		"Silver coated, strap & buckle",
		"All-season protection, soft inner lining",
		"Anti-scratch, elastic hem",
		"Includes storage bag",
		"Triple-stitch seams",
		"Windproof straps",
		"Heat resistant",
		"Lightweight and durable",
	}

	prices = []string{
		"₹ 999",
		"₹ 1,199",
		"₹ 1,299",
		"₹ 1,499",
		"₹ 1,799",
		"₹ 1,999",
		"₹ 2,199",
	}
)

// Generator produces placeholder listings in the scraped schema so the
// pipeline always has data to show when the live site yields nothing.
type Generator struct {
	rnd *mathrand.Rand
}

// NewGenerator creates a generator seeded from the current time
func NewGenerator() *Generator {
	return NewSeededGenerator(time.Now().UnixNano())
}

// NewSeededGenerator creates a generator with a fixed seed for reproducible output
func NewSeededGenerator(seed int64) *Generator {
	return &Generator{
		rnd: mathrand.New(mathrand.NewSource(seed)),
	}
}

// Generate returns exactly n listings drawn from the candidate pools,
// every one tagged with the mock source. It never fails.
func (g *Generator) Generate(n int) []scraper.Listing {
	listings := make([]scraper.Listing, 0, n)
	for i := 0; i < n; i++ {
		listings = append(listings, scraper.Listing{
			Title:       titles[g.rnd.Intn(len(titles))],
			Description: features[g.rnd.Intn(len(features))],
			Price:       prices[g.rnd.Intn(len(prices))],
			Source:      scraper.SourceMock,
		})
	}
	return listings
}
