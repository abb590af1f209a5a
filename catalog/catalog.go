// Package catalog loads and indexes the static brand list.
package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"scentshop/models"
)

// Catalog is the loaded brand list with lookup helpers. It is immutable
// once constructed.
type Catalog struct {
	brands []models.Brand
}

// New builds a catalog from an already-sorted brand list
func New(brands []models.Brand) *Catalog {
	return &Catalog{brands: brands}
}

// Brands returns all brands in display order
func (c *Catalog) Brands() []models.Brand {
	return c.brands
}

// Brand looks up a brand by name
func (c *Catalog) Brand(name string) (models.Brand, bool) {
	for _, b := range c.brands {
		if b.Name == name {
			return b, true
		}
	}
	return models.Brand{}, false
}

// Fragrance looks up a fragrance by brand and fragrance name
func (c *Catalog) Fragrance(brand, name string) (models.Fragrance, bool) {
	b, ok := c.Brand(brand)
	if !ok {
		return models.Fragrance{}, false
	}
	for _, f := range b.Aromas {
		if f.Name == name {
			return f, true
		}
	}
	return models.Fragrance{}, false
}

// Price returns the price for a fragrance volume tier. A fragrance with no
// price entries is not orderable, so every lookup on it fails.
func (c *Catalog) Price(brand, fragrance, volume string) (int, bool) {
	f, ok := c.Fragrance(brand, fragrance)
	if !ok || !f.Orderable() {
		return 0, false
	}
	price, ok := f.Prices[volume]
	return price, ok
}

// SortBrands orders brands alphabetically by name using locale-aware,
// case-insensitive collation.
func SortBrands(brands []models.Brand) {
	col := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(brands, func(i, j int) bool {
		return col.CompareString(brands[i].Name, brands[j].Name) < 0
	})
}
