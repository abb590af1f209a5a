package models

// Brand represents a named collection of fragrances from the catalog feed
type Brand struct {
	Name   string      `json:"name"`
	Aromas []Fragrance `json:"aromas"`
}

// Fragrance represents a sellable scent with per-volume pricing.
// Prices maps a volume label (e.g. "30", "50") to a price in whole units
// of a single currency.
type Fragrance struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	ScentGroup  string         `json:"scentGroup"`
	Prices      map[string]int `json:"prices"`
	Image       string         `json:"image,omitempty"`
	Brand       string         `json:"brand,omitempty"`
	Country     string         `json:"country,omitempty"`
	Flag        string         `json:"flag,omitempty"`
	Gender      string         `json:"gender,omitempty"`
	Rating      float64        `json:"rating,omitempty"`
	Notes       []string       `json:"notes,omitempty"`
}

// Orderable reports whether the fragrance carries at least one price tier
func (f Fragrance) Orderable() bool {
	return len(f.Prices) > 0
}
