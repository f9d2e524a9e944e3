package checkout

import "errors"

var (
	// -- Guards --
	ErrCartEmpty        = errors.New("cart is empty")
	ErrNotAuthenticated = errors.New("user not authenticated")

	// -- Saga step failures --
	ErrOrderCreation     = errors.New("order creation failed")
	ErrOrderItemCreation = errors.New("order item creation failed")
	ErrPayment           = errors.New("payment processing failed")
)
