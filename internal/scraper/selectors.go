package scraper

// Selectors contains CSS selectors for the listing elements on a search page.
// The site ships its markup in a few variants, so container selectors are
// tried in order until one matches.
type Selectors struct {
	Containers  []string
	Title       string
	Description string
	Price       string
}

// DefaultSelectors returns the selector set for the current OLX search markup
func DefaultSelectors() Selectors {
	return Selectors{
		Containers: []string{
			`div[data-aut-id="itemBox"]`,
			"div.EIR5N",
			`li[data-aut-id="itemBox"]`,
		},
		Title:       `span[data-aut-id="itemTitle"]`,
		Description: `span[data-aut-id="itemDescription"]`,
		Price:       `span[data-aut-id="itemPrice"]`,
	}
}
