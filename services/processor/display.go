package processor

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"olxcarcovers/helpers"
	"olxcarcovers/internal/scraper"
)

// maxColWidth bounds title and description cells, ellipsis included
const maxColWidth = 50

// Display renders the listings as a table on w. Truncation here is purely
// visual; exported CSV rows keep the full field values.
func (p *Processor) Display(w io.Writer, listings []scraper.Listing) {
	if len(listings) == 0 {
		fmt.Fprintln(w, "No listings found!")
		return
	}

	fmt.Fprintf(w, "\nFound %d car cover listings\n", len(listings))

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Title", "Description", "Price"})
	for i, listing := range listings {
		t.AppendRow(table.Row{
			i + 1,
			helpers.Truncate(listing.Title, maxColWidth),
			helpers.Truncate(listing.Description, maxColWidth),
			listing.Price,
		})
	}
	t.Render()
}

// DisplayStats prints the summary statistics block
func (p *Processor) DisplayStats(w io.Writer, stats Stats) {
	fmt.Fprintln(w, "\nSummary statistics")
	fmt.Fprintf(w, "  Total listings found:      %d\n", stats.Total)
	fmt.Fprintf(w, "  Listings with price:       %d\n", stats.WithPrice)
	fmt.Fprintf(w, "  Listings with description: %d\n", stats.WithDescription)
	fmt.Fprintf(w, "  Data completeness:         %.1f%%\n", stats.Completeness)
}
