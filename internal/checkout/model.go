package checkout

import (
	"time"

	"shopora/internal/backend"
	"shopora/internal/payment"
	"shopora/internal/pricing"
)

// State of one checkout attempt. Order creation, item creation and payment
// are independent network effects with no backend transaction around them,
// so the saga tracks exactly where it stands.
type State string

const (
	StateIdle            State = "IDLE"
	StateSubmitting      State = "SUBMITTING"
	StateAwaitingItems   State = "AWAITING_ITEMS"
	StateAwaitingPayment State = "AWAITING_PAYMENT"
	StateCompleted       State = "COMPLETED"
	StateFailed          State = "FAILED"
)

func (s State) IsTerminal() bool {
	return s == StateCompleted || s == StateFailed
}

func (s State) String() string {
	return string(s)
}

// Checkpoint is the in-memory record of a user's latest checkout attempt.
// After a failure it shows how far the saga got: an order id with
// ItemsCreated below the cart size means orphaned backend records.
type Checkpoint struct {
	State        State             `json:"state"`
	OrderNumber  string            `json:"orderNumber,omitempty"`
	OrderID      string            `json:"orderId,omitempty"`
	ItemsCreated int               `json:"itemsCreated"`
	Pricing      pricing.Breakdown `json:"pricing"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// OrderSummary aggregates the created order, its items and the payment
// result for display and printing. View-only, not persisted.
type OrderSummary struct {
	OrderID         string              `json:"orderId"`
	OrderNumber     string              `json:"orderNumber"`
	Items           []backend.OrderItem `json:"items"`
	Subtotal        int64               `json:"subtotal"`
	Discount        int64               `json:"discount"`
	ShippingCharge  int64               `json:"shippingCharge"`
	TotalAmount     int64               `json:"totalAmount"`
	ShippingAddress string              `json:"shippingAddress"`
	PaymentStatus   payment.Status      `json:"paymentStatus"`
}
