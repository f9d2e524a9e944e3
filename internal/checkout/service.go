package checkout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"shopora/internal/backend"
	"shopora/internal/cart"
	"shopora/internal/logger"
	"shopora/internal/metrics"
	"shopora/internal/payment"
	"shopora/internal/pricing"
	"shopora/internal/utils"

	"go.uber.org/zap"
)

// DefaultShippingAddress is the fixed address every order ships to in this
// version of the storefront.
const DefaultShippingAddress = "221B Baker Street, London"

// Backend is the slice of the storefront backend the orchestrator depends on.
type Backend interface {
	CreateOrder(ctx context.Context, req backend.CreateOrderRequest) (*backend.Order, error)
	CreateOrderItem(ctx context.Context, req backend.CreateOrderItemRequest) (*backend.OrderItem, error)
}

// Service runs the cart-to-order saga: create the order, create one order
// item per cart line, charge the payment gateway, then clear the cart.
type Service interface {
	Submit(ctx context.Context, store *cart.Store) (*OrderSummary, error)
	Checkpoint(userID string) Checkpoint
}

type service struct {
	backend         Backend
	gateway         payment.Gateway
	shippingAddress string
	metrics         *metrics.Checkout

	mu          sync.Mutex
	checkpoints map[string]*Checkpoint
}

func NewService(b Backend, gw payment.Gateway, m *metrics.Checkout) Service {
	return &service{
		backend:         b,
		gateway:         gw,
		shippingAddress: DefaultShippingAddress,
		metrics:         m,
		checkpoints:     make(map[string]*Checkpoint),
	}
}

// Submit executes one checkout attempt for the user owning the store.
//
// There is no cross-step transaction: a failure after order creation leaves
// the order (and any already-created items) on the backend. The cart is
// cleared on, and only on, full success, so every failure path leaves the
// cart exactly as it was and the user can retry; a retry submits a new
// order under a new order number.
func (s *service) Submit(ctx context.Context, store *cart.Store) (*OrderSummary, error) {
	userID := store.UserID()
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	lines := store.Lines()
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	s.metrics.Started.Inc()
	timer := metrics.StartTimer()

	cp := &Checkpoint{
		State:       StateSubmitting,
		OrderNumber: utils.GenerateOrderNumber(),
		Pricing:     pricing.Compute(lines),
		UpdatedAt:   time.Now(),
	}
	s.setCheckpoint(userID, cp)

	log := logger.WithLayer(ctx, "checkout").With(
		zap.String("user_id", userID),
		zap.String("order_number", cp.OrderNumber),
	)

	log.Info("checkout started",
		zap.Int("line_count", len(lines)),
		zap.Int64("subtotal", cp.Pricing.Subtotal),
		zap.Int64("grand_total", cp.Pricing.GrandTotal),
	)

	// 1. Create the order
	order, err := s.backend.CreateOrder(ctx, backend.CreateOrderRequest{
		UserID:          userID,
		OrderNumber:     cp.OrderNumber,
		Subtotal:        cp.Pricing.Subtotal,
		TotalAmount:     cp.Pricing.GrandTotal,
		Discount:        cp.Pricing.Discount,
		ShippingCharge:  cp.Pricing.ShippingCharge,
		ShippingAddress: s.shippingAddress,
	})
	if err != nil {
		return nil, s.fail(cp, log, ErrOrderCreation, err)
	}

	// Every order item below must reference this id.
	cp.OrderID = order.ID
	s.transition(cp, log, StateAwaitingItems)

	// 2. One order item per cart line, sequentially, in cart-line order
	items := make([]backend.OrderItem, 0, len(lines))
	for _, line := range lines {
		var unitPrice int64
		name := "Product"
		if line.Product != nil {
			unitPrice = line.Product.UnitPrice
			name = line.Product.Name
		}

		item, err := s.backend.CreateOrderItem(ctx, backend.CreateOrderItemRequest{
			OrderID:     order.ID,
			ProductID:   line.ProductID,
			ProductName: name,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
			TotalPrice:  unitPrice * int64(line.Quantity),
		})
		if err != nil {
			// No rollback of the order or the items already created.
			return nil, s.fail(cp, log, ErrOrderItemCreation, err)
		}

		items = append(items, *item)
		cp.ItemsCreated++
	}
	s.transition(cp, log, StateAwaitingPayment)

	// 3. Charge the gateway with the grand total
	payResult, err := s.gateway.Charge(ctx, cp.Pricing.GrandTotal)
	if err != nil {
		return nil, s.fail(cp, log, ErrPayment, err)
	}

	// Payment status is informational here: Paid and Failed both complete.
	s.transition(cp, log, StateCompleted)
	store.Clear()
	s.metrics.Completed.Inc()

	log.Info("checkout completed",
		zap.String("order_id", order.ID),
		zap.String("payment_status", string(payResult.Status)),
		zap.Duration("took", timer.Duration()),
	)

	return &OrderSummary{
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		Items:           items,
		Subtotal:        cp.Pricing.Subtotal,
		Discount:        cp.Pricing.Discount,
		ShippingCharge:  cp.Pricing.ShippingCharge,
		TotalAmount:     cp.Pricing.GrandTotal,
		ShippingAddress: s.shippingAddress,
		PaymentStatus:   payResult.Status,
	}, nil
}

// Checkpoint returns the user's latest attempt state, StateIdle if none.
func (s *service) Checkpoint(userID string) Checkpoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cp, ok := s.checkpoints[userID]; ok {
		return *cp
	}
	return Checkpoint{State: StateIdle}
}

func (s *service) setCheckpoint(userID string, cp *Checkpoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkpoints[userID] = cp
}

func (s *service) transition(cp *Checkpoint, log *zap.Logger, next State) {
	s.mu.Lock()
	cp.State = next
	cp.UpdatedAt = time.Now()
	s.mu.Unlock()

	log.Debug("checkout state changed", zap.String("state", next.String()))
}

func (s *service) fail(cp *Checkpoint, log *zap.Logger, step error, cause error) error {
	s.transition(cp, log, StateFailed)
	s.metrics.Failed.Inc()

	log.Error("checkout failed",
		zap.String("order_id", cp.OrderID),
		zap.Int("items_created", cp.ItemsCreated),
		zap.Error(cause),
	)

	return fmt.Errorf("%w: %v", step, cause)
}
