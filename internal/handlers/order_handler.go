package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/azubi-tmp/checkout-api/internal/models"
	"github.com/azubi-tmp/checkout-api/internal/service"
)

// clientErrors are validation failures caused by the request itself. Their
// messages are returned verbatim with a 400; anything else is opaque.
var clientErrors = []error{
	service.ErrMissingField,
	service.ErrInvalidPaymentMethod,
	service.ErrMissingEMoneyFields,
	service.ErrInvalidEMoneyNumber,
	service.ErrInvalidEMoneyPin,
	service.ErrInvalidQuantity,
	service.ErrUnknownItem,
}

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /create-order
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	confirmation, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		for _, clientErr := range clientErrors {
			if errors.Is(err, clientErr) {
				h.log.Warn("order rejected", "error", err)
				WriteError(w, http.StatusBadRequest, err.Error(), h.log)
				return
			}
		}

		h.log.Error("order processing failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal Server Error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, confirmation, h.log)
}
