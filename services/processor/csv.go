package processor

import (
	"encoding/csv"
	"io"
	"os"

	"olxcarcovers/internal/scraper"
	errs "olxcarcovers/pkg/errors"
)

// csvHeader holds the output columns. The source tag is runtime provenance
// and stays out of the export.
var csvHeader = []string{"title", "description", "price"}

// WriteCSV writes listings as UTF-8 CSV rows to w
func WriteCSV(w io.Writer, listings []scraper.Listing) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, listing := range listings {
		if err := cw.Write([]string{listing.Title, listing.Description, listing.Price}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV writes listings to path, overwriting any existing file.
// Unlike fetch errors, a failure here is fatal for the run.
func (p *Processor) SaveCSV(listings []scraper.Listing, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.NewIO(path, "failed to create output file", err)
	}
	defer f.Close()

	if err := WriteCSV(f, listings); err != nil {
		return errs.NewIO(path, "failed to write CSV", err)
	}

	p.log.Info().Str("path", path).Int("count", len(listings)).Msg("Results saved")
	return nil
}
