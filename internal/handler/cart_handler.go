package handler

import (
	"errors"
	"net/http"

	"shopora/internal/cart"

	"github.com/labstack/echo/v4"
)

// CartHandler exposes the cart store over HTTP.
type CartHandler struct {
	carts *cart.Registry
}

func NewCartHandler(carts *cart.Registry) *CartHandler {
	return &CartHandler{carts: carts}
}

type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/cart", h.getCart)
	g.POST("/cart/items", h.addItem)
	g.DELETE("/cart/items/:id", h.deleteItem)
}

func (h *CartHandler) getCart(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	lines, err := h.carts.For(userID).Load(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to load cart"})
	}

	return c.JSON(http.StatusOK, lines)
}

func (h *CartHandler) addItem(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	line, err := h.carts.For(userID).Add(c.Request().Context(), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to add to cart"})
	}

	return c.JSON(http.StatusCreated, line)
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	err := h.carts.For(userID).Remove(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, cart.ErrLineNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to remove from cart"})
	}

	return c.NoContent(http.StatusNoContent)
}
