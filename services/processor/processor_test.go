package processor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"olxcarcovers/internal/scraper"
)

func TestClean(t *testing.T) {
	p := NewProcessor()

	listings := p.Clean([]scraper.Listing{
		{
			Title:       "  Waterproof \n Car   Cover ",
			Description: "\tUV protection\n\nall season ",
			Price:       " ₹\n1,299 ",
			Source:      scraper.SourceReal,
		},
	})

	assert.Equal(t, "Waterproof Car Cover", listings[0].Title)
	assert.Equal(t, "UV protection all season", listings[0].Description)
	assert.Equal(t, "₹ 1,299", listings[0].Price)
	// Provenance survives cleaning
	assert.Equal(t, scraper.SourceReal, listings[0].Source)
}

func TestFilterValid(t *testing.T) {
	p := NewProcessor()

	listings := p.FilterValid([]scraper.Listing{
		{Title: "Premium Car Cover"},
		{Title: "x"},
		{Title: ""},
		{Title: "12345"},  // exactly at the limit, dropped
		{Title: "123456"}, // one over, kept
	})

	assert.Equal(t, 2, len(listings))
	assert.Equal(t, "Premium Car Cover", listings[0].Title)
	assert.Equal(t, "123456", listings[1].Title)
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats([]scraper.Listing{
		{Title: "A", Price: "₹ 999", Description: "desc"},
		{Title: "B", Price: "₹ 1,199"},
		{Title: "C"},
		{Title: "D", Description: "desc"},
	})

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.WithPrice)
	assert.Equal(t, 2, stats.WithDescription)
	assert.InDelta(t, 50.0, stats.Completeness, 0.01)

	empty := ComputeStats(nil)
	assert.Equal(t, 0, empty.Total)
	assert.Equal(t, 0.0, empty.Completeness)
}

// tableRowCount counts rendered table lines holding cell content
func tableRowCount(output string) int {
	count := 0
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "│") {
			count++
		}
	}
	return count
}

func TestDisplay(t *testing.T) {
	p := NewProcessor()

	listings := []scraper.Listing{
		{Title: "Waterproof Car Cover", Description: "UV protection", Price: "₹ 1,299"},
		{Title: "Premium Sedan Cover", Description: "", Price: "₹ 899"},
		{Title: "Hatchback Cover", Description: "Mirror pockets", Price: ""},
	}

	var buf bytes.Buffer
	p.Display(&buf, listings)
	output := buf.String()

	assert.Contains(t, output, "Found 3 car cover listings")
	assert.Contains(t, output, "Waterproof Car Cover")
	assert.Contains(t, output, "Premium Sedan Cover")
	assert.Contains(t, output, "₹ 1,299")

	// Header row plus one row per listing
	assert.Equal(t, 4, tableRowCount(output))
}

func TestDisplayTruncatesLongValues(t *testing.T) {
	p := NewProcessor()

	longTitle := strings.Repeat("Very Long Car Cover Title ", 5)
	var buf bytes.Buffer
	p.Display(&buf, []scraper.Listing{{Title: longTitle, Price: "₹ 999"}})
	output := buf.String()

	assert.NotContains(t, output, longTitle, "Overlong titles are shortened for display")
	assert.Contains(t, output, "...")
}

func TestDisplayEmpty(t *testing.T) {
	p := NewProcessor()

	var buf bytes.Buffer
	p.Display(&buf, nil)

	assert.Contains(t, buf.String(), "No listings found!")
	assert.Equal(t, 0, tableRowCount(buf.String()), "No table is rendered for an empty batch")
}

func TestDisplayStats(t *testing.T) {
	p := NewProcessor()

	var buf bytes.Buffer
	p.DisplayStats(&buf, Stats{Total: 15, WithPrice: 15, WithDescription: 12, Completeness: 100})

	output := buf.String()
	assert.Contains(t, output, "Total listings found:      15")
	assert.Contains(t, output, "Listings with description: 12")
	assert.Contains(t, output, "100.0%")
}
