package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"shopora/internal/logger"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const apiPrefix = "/api"

// Client talks to the external storefront backend over REST. All persistence
// (carts, products, orders, order items) lives behind it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

// ----------------- Constructor -----------------

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		logger.L().Warn("backend base URL is empty")
	}

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "storefront-backend",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			// Client-side rejections must not poison the breaker.
			var se *StatusError
			return errors.As(err, &se) && se.StatusCode < http.StatusInternalServerError
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.L().Warn("backend circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		breaker: breaker,
	}
}

// do runs one request through the circuit breaker and returns the raw body.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Add("Content-Type", "application/json")
	}

	raw, err := c.breaker.Execute(func() ([]byte, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read backend response: %w", err)
		}

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
		}

		return bodyBytes, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil, err
	}

	return raw, nil
}

// ----------------- Carts -----------------

func (c *Client) FetchCart(ctx context.Context, userID string) ([]CartItem, error) {
	raw, err := c.do(ctx, http.MethodGet, "/carts/"+userID, nil)
	if err != nil {
		return nil, err
	}

	var items []CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	return items, nil
}

func (c *Client) AddCartItem(ctx context.Context, req AddCartItemRequest) (*CartItem, error) {
	raw, err := c.do(ctx, http.MethodPost, "/carts/add", req)
	if err != nil {
		return nil, err
	}

	var item CartItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	return &item, nil
}

func (c *Client) DeleteCartItem(ctx context.Context, cartItemID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/carts/"+cartItemID, nil)
	return err
}

// ----------------- Catalog -----------------

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	raw, err := c.do(ctx, http.MethodGet, "/products", nil)
	if err != nil {
		return nil, err
	}

	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	return products, nil
}

// ----------------- Orders -----------------

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	log := logger.WithLayer(ctx, "backend").With(
		zap.String("order_number", req.OrderNumber),
		zap.Int64("total_amount", req.TotalAmount),
	)

	raw, err := c.do(ctx, http.MethodPost, "/orders", req)
	if err != nil {
		log.Error("order creation request failed", zap.Error(err))
		return nil, err
	}

	var order Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}

	log.Info("order created", zap.String("order_id", order.ID))
	return &order, nil
}

func (c *Client) CreateOrderItem(ctx context.Context, req CreateOrderItemRequest) (*OrderItem, error) {
	raw, err := c.do(ctx, http.MethodPost, "/order-items", req)
	if err != nil {
		logger.WithLayer(ctx, "backend").Error("order item creation request failed",
			zap.String("order_id", req.OrderID),
			zap.String("product_id", req.ProductID),
			zap.Error(err),
		)
		return nil, err
	}

	var item OrderItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	return &item, nil
}
