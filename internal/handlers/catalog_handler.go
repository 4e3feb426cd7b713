package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/azubi-tmp/checkout-api/internal/repository"
	"github.com/azubi-tmp/checkout-api/internal/service"
	"github.com/go-chi/chi/v5"
)

// CatalogHandler handles catalog-related HTTP requests
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

// ListEntries handles GET /api/catalog
// Returns every entry in the storefront catalog
func (h *CatalogHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListEntries(r.Context())
	if err != nil {
		h.logger.Error("failed to list catalog", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal Server Error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, entries, h.logger)
}

// GetEntry handles GET /api/catalog/{itemId}
// Catalog ids are free-form strings such as "XX99 MK II", so no shape check
// is applied beyond presence.
func (h *CatalogHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")
	if itemID == "" {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return
	}

	entry, err := h.service.GetEntry(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			h.logger.Info("catalog entry not found", "item_id", itemID)
			WriteError(w, http.StatusNotFound, "Item not found", h.logger)
			return
		}

		h.logger.Error("failed to get catalog entry", "item_id", itemID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal Server Error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, entry, h.logger)
}
