package models

// PaymentMethod is the closed set of payment methods the checkout accepts.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentEMoney PaymentMethod = "e-money"
)

// ParsePaymentMethod maps a wire value onto the enum.
// The second return is false for anything outside the closed set.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentEMoney:
		return PaymentMethod(s), true
	}
	return "", false
}

// OrderStatus is the post-checkout state of an order.
// Cash orders await collection on delivery; e-money orders are settled
// immediately by the simulated gateway.
type OrderStatus string

const (
	StatusPendingPayment OrderStatus = "pending_payment"
	StatusPaid           OrderStatus = "paid"
)

// LineItem is a (catalog id, quantity) pair submitted as part of an order.
type LineItem struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// OrderRequest represents an incoming checkout request.
// Schema matches the /create-order wire contract.
type OrderRequest struct {
	Items         []LineItem `json:"items"`
	UserName      string     `json:"userName"`
	PaymentMethod string     `json:"paymentMethod"`
	EMoneyNumber  string     `json:"eMoneyNumber,omitempty"`
	EMoneyPin     string     `json:"eMoneyPin,omitempty"`
}

// OrderSummaryLine is one resolved line of an order, derived 1:1 from a
// valid LineItem. The wire name for the price field is "price".
type OrderSummaryLine struct {
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	PriceInCents int64  `json:"price"`
}

// OrderConfirmation is the result of an accepted checkout request. It is
// never persisted; its lifetime ends when the HTTP response is written.
type OrderConfirmation struct {
	// ID is the internal unique handle used in diagnostics. OrderNumber is
	// the short display identifier shown to the customer.
	ID            string             `json:"-"`
	URL           string             `json:"url"`
	OrderNumber   string             `json:"orderNumber"`
	Summary       []OrderSummaryLine `json:"summary"`
	TotalInCents  int64              `json:"total"`
	UserName      string             `json:"userName"`
	PaymentMethod PaymentMethod      `json:"paymentMethod"`
	Status        OrderStatus        `json:"status"`
}
