package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/azubi-tmp/checkout-api/internal/models"
)

var (
	ErrEntryNotFound = errors.New("catalog entry not found")
)

// CatalogRepository defines the interface for catalog data access
type CatalogRepository interface {
	GetAll(ctx context.Context) ([]models.CatalogEntry, error)
	GetByID(ctx context.Context, id string) (*models.CatalogEntry, error)
}

// InMemoryCatalogRepository implements CatalogRepository with an in-memory map.
// The map is populated once at construction and never mutated, so it is safe
// to share across concurrent requests without locking.
type InMemoryCatalogRepository struct {
	entries map[string]models.CatalogEntry
}

// NewInMemoryCatalogRepository creates a catalog repository seeded with the
// storefront's product line
func NewInMemoryCatalogRepository() *InMemoryCatalogRepository {
	entries := map[string]models.CatalogEntry{
		"XX99 MK II": {ID: "XX99 MK II", Name: "XX99 Mark II Headphones", PriceInCents: 299900},
		"XX99 MK I":  {ID: "XX99 MK I", Name: "XX99 Mark I Headphones", PriceInCents: 175000},
		"XX59":       {ID: "XX59", Name: "XX59 Headphones", PriceInCents: 89900},
		"ZX9":        {ID: "ZX9", Name: "ZX9 Speaker", PriceInCents: 450000},
		"ZX7":        {ID: "ZX7", Name: "ZX7 Speaker", PriceInCents: 350000},
		"YX1":        {ID: "YX1", Name: "YX1 Speaker", PriceInCents: 59900},
	}

	return &InMemoryCatalogRepository{
		entries: entries,
	}
}

// NewCatalogRepositoryFromEntries creates a catalog repository from an
// explicit entry list. Used for fixture catalogs in tests and for file-backed
// catalogs.
func NewCatalogRepositoryFromEntries(entries []models.CatalogEntry) (*InMemoryCatalogRepository, error) {
	if len(entries) == 0 {
		return nil, errors.New("catalog must contain at least one entry")
	}

	m := make(map[string]models.CatalogEntry, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return nil, errors.New("catalog entry with empty id")
		}
		if e.PriceInCents < 0 {
			return nil, fmt.Errorf("catalog entry %q has negative price", e.ID)
		}
		if _, exists := m[e.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog entry %q", e.ID)
		}
		m[e.ID] = e
	}

	return &InMemoryCatalogRepository{entries: m}, nil
}

// NewCatalogRepositoryFromFile loads catalog entries from a JSON file.
// The file holds an array of {id, name, priceInCents} objects. A malformed
// file is a startup error, not something to limp along with.
func NewCatalogRepositoryFromFile(path string) (*InMemoryCatalogRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var entries []models.CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	return NewCatalogRepositoryFromEntries(entries)
}

// GetAll returns all catalog entries
func (r *InMemoryCatalogRepository) GetAll(ctx context.Context) ([]models.CatalogEntry, error) {
	entries := make([]models.CatalogEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}
	return entries, nil
}

// GetByID returns a catalog entry by its ID
func (r *InMemoryCatalogRepository) GetByID(ctx context.Context, id string) (*models.CatalogEntry, error) {
	entry, exists := r.entries[id]
	if !exists {
		return nil, ErrEntryNotFound
	}
	return &entry, nil
}
