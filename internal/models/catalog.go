package models

// CatalogEntry represents a product available in the storefront catalog.
// Prices are integer cents; entries are immutable after startup.
type CatalogEntry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PriceInCents int64  `json:"priceInCents"`
}
