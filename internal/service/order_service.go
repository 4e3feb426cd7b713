package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/azubi-tmp/checkout-api/internal/models"
	"github.com/azubi-tmp/checkout-api/internal/repository"
	"github.com/azubi-tmp/checkout-api/internal/validation"
	"github.com/google/uuid"
)

// Validation failures are returned verbatim to the caller, so the messages
// are user-facing.
var (
	ErrMissingField         = errors.New("Missing required fields")
	ErrInvalidPaymentMethod = errors.New("Invalid payment method")
	ErrMissingEMoneyFields  = errors.New("e-Money number and PIN are required")
	ErrInvalidEMoneyNumber  = errors.New("e-Money number must be 9 digits")
	ErrInvalidEMoneyPin     = errors.New("e-Money PIN must be 4 digits")
	ErrInvalidQuantity      = errors.New("Quantity must be at least 1")
	ErrUnknownItem          = errors.New("Invalid item")
)

// OrderService handles checkout business logic
type OrderService struct {
	log     *slog.Logger
	catalog repository.CatalogRepository
	baseURL string

	// now is swapped out in tests to pin the order number
	now func() time.Time
}

// NewOrderService creates a new order service. baseURL is the storefront
// address the confirmation redirect points at.
func NewOrderService(log *slog.Logger, catalog repository.CatalogRepository, baseURL string) *OrderService {
	return &OrderService{
		log:     log,
		catalog: catalog,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// CreateOrder validates the request, resolves every line item against the
// catalog, computes the total and produces an order confirmation. Any failure
// rejects the whole request; no partial order is ever produced.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.OrderConfirmation, error) {
	if len(req.Items) == 0 || req.UserName == "" || req.PaymentMethod == "" {
		return nil, ErrMissingField
	}

	method, ok := models.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		return nil, ErrInvalidPaymentMethod
	}

	// e-money fields are only meaningful for e-money payments; for cash they
	// are ignored even when present.
	if method == models.PaymentEMoney {
		if req.EMoneyNumber == "" || req.EMoneyPin == "" {
			return nil, ErrMissingEMoneyFields
		}
		if !validation.ValidEMoneyNumber(req.EMoneyNumber) {
			return nil, ErrInvalidEMoneyNumber
		}
		if !validation.ValidEMoneyPin(req.EMoneyPin) {
			return nil, ErrInvalidEMoneyPin
		}
	}

	// Resolve line items in input order. Summary and total are built from the
	// same resolved set so they cannot disagree.
	summary := make([]models.OrderSummaryLine, 0, len(req.Items))
	var total int64
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}

		entry, err := s.catalog.GetByID(ctx, item.ID)
		if err != nil {
			if errors.Is(err, repository.ErrEntryNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownItem, item.ID)
			}
			return nil, fmt.Errorf("resolve item %q: %w", item.ID, err)
		}

		summary = append(summary, models.OrderSummaryLine{
			Name:         entry.Name,
			Quantity:     item.Quantity,
			PriceInCents: entry.PriceInCents,
		})
		total += entry.PriceInCents * int64(item.Quantity)
	}

	orderNumber := s.generateOrderNumber()

	status := models.StatusPaid
	if method == models.PaymentCash {
		status = models.StatusPendingPayment
	}

	confirmation := &models.OrderConfirmation{
		ID:            uuid.New().String(),
		URL:           fmt.Sprintf("%s/checkout?ordersuccess=true&orderNumber=%s", s.baseURL, orderNumber),
		OrderNumber:   orderNumber,
		Summary:       summary,
		TotalInCents:  total,
		UserName:      req.UserName,
		PaymentMethod: method,
		Status:        status,
	}

	logger := s.log.With(
		slog.String("order_id", confirmation.ID),
		slog.String("order_number", orderNumber),
	)
	logger.Info("new order",
		"user_name", req.UserName,
		"payment_method", string(method),
		"total_cents", total,
	)
	if method == models.PaymentEMoney {
		// Payment is simulated; no gateway is contacted. The account number
		// is masked in logs.
		logger.Info("simulated e-money payment processed",
			"e_money_number", maskEMoneyNumber(req.EMoneyNumber),
		)
	}

	return confirmation, nil
}

// generateOrderNumber derives the short display identifier from the current
// epoch-millisecond clock. It is cosmetic, not guaranteed unique; the uuid on
// the confirmation is the unique handle.
func (s *OrderService) generateOrderNumber() string {
	return fmt.Sprintf("ORD-%06d", s.now().UnixMilli()%1_000_000)
}

// maskEMoneyNumber keeps only the last three digits of a payment identifier.
func maskEMoneyNumber(n string) string {
	if len(n) <= 3 {
		return strings.Repeat("*", len(n))
	}
	return strings.Repeat("*", len(n)-3) + n[len(n)-3:]
}
