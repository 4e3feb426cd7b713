package service

import (
	"context"

	"github.com/azubi-tmp/checkout-api/internal/models"
	"github.com/azubi-tmp/checkout-api/internal/repository"
)

// CatalogService handles business logic for the storefront catalog
type CatalogService struct {
	repo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repository.CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListEntries returns all catalog entries
func (s *CatalogService) ListEntries(ctx context.Context) ([]models.CatalogEntry, error) {
	return s.repo.GetAll(ctx)
}

// GetEntry returns a catalog entry by ID
func (s *CatalogService) GetEntry(ctx context.Context, id string) (*models.CatalogEntry, error) {
	return s.repo.GetByID(ctx, id)
}
