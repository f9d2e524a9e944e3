package handler

import (
	"errors"
	"net/http"

	"shopora/internal/cart"
	"shopora/internal/checkout"
	"shopora/internal/metrics"

	"github.com/labstack/echo/v4"
)

// CheckoutHandler drives the cart-to-order saga.
type CheckoutHandler struct {
	carts    *cart.Registry
	checkout checkout.Service
	metrics  *metrics.Checkout
}

func NewCheckoutHandler(carts *cart.Registry, svc checkout.Service, m *metrics.Checkout) *CheckoutHandler {
	return &CheckoutHandler{carts: carts, checkout: svc, metrics: m}
}

func (h *CheckoutHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/checkout", h.postCheckout)
	g.GET("/checkout", h.getCheckpoint)
	g.GET("/metrics", h.getMetrics)
}

func (h *CheckoutHandler) postCheckout(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	summary, err := h.checkout.Submit(c.Request().Context(), h.carts.For(userID))
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrNotAuthenticated):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		case errors.Is(err, checkout.ErrCartEmpty):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cart is empty"})
		default:
			// The step error is logged by the orchestrator; clients get
			// one generic message regardless of how far the saga got.
			return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "checkout failed"})
		}
	}

	return c.JSON(http.StatusCreated, summary)
}

func (h *CheckoutHandler) getCheckpoint(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	return c.JSON(http.StatusOK, h.checkout.Checkpoint(userID))
}

func (h *CheckoutHandler) getMetrics(c echo.Context) error {
	return c.JSON(http.StatusOK, h.metrics.Snapshot())
}
