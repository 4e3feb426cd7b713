package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/azubi-tmp/checkout-api/internal/models"
	"github.com/azubi-tmp/checkout-api/internal/repository"
	"github.com/azubi-tmp/checkout-api/internal/service"
	"github.com/azubi-tmp/checkout-api/pkg/logger"
	"github.com/go-chi/chi/v5"
)

func newCatalogTestRouter() *chi.Mux {
	repo := repository.NewInMemoryCatalogRepository()
	svc := service.NewCatalogService(repo)
	log := logger.New(logger.EnvProd, "error")
	handler := NewCatalogHandler(svc, log)

	r := chi.NewRouter()
	r.Get("/api/catalog", handler.ListEntries)
	r.Get("/api/catalog/{itemId}", handler.GetEntry)
	return r
}

func TestCatalogHandler_ListEntries(t *testing.T) {
	r := newCatalogTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var entries []models.CatalogEntry
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(entries) != 6 {
		t.Errorf("expected 6 catalog entries, got %d", len(entries))
	}
}

func TestCatalogHandler_GetEntry_Success(t *testing.T) {
	r := newCatalogTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/ZX7", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var entry models.CatalogEntry
	if err := json.NewDecoder(w.Body).Decode(&entry); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if entry.ID != "ZX7" {
		t.Errorf("expected entry ID ZX7, got %s", entry.ID)
	}
	if entry.PriceInCents != 350000 {
		t.Errorf("expected price 350000, got %d", entry.PriceInCents)
	}
}

func TestCatalogHandler_GetEntry_SpacedID(t *testing.T) {
	r := newCatalogTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/XX99%20MK%20II", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var entry models.CatalogEntry
	if err := json.NewDecoder(w.Body).Decode(&entry); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if entry.Name != "XX99 Mark II Headphones" {
		t.Errorf("unexpected entry name %q", entry.Name)
	}
}

func TestCatalogHandler_GetEntry_NotFound(t *testing.T) {
	r := newCatalogTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/catalog/NOPE", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	var errResp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&errResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if errResp["error"] != "Item not found" {
		t.Errorf("unexpected error message %q", errResp["error"])
	}
}
