package backend

import "time"

// Wire types for the storefront backend. Field names follow the backend's
// JSON (camelCase), amounts are whole source-currency units.

type Product struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           int64  `json:"price"`
	Stock           int    `json:"stock"`
	CategoryName    string `json:"categoryName"`
	SubCategoryName string `json:"subCategoryName"`
	Image           string `json:"image,omitempty"`
}

type CartItem struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type AddCartItemRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderRequest struct {
	UserID          string `json:"userId"`
	OrderNumber     string `json:"orderNumber"`
	Subtotal        int64  `json:"subtotal"`
	TotalAmount     int64  `json:"totalAmount"`
	Discount        int64  `json:"discount"`
	ShippingCharge  int64  `json:"shippingCharge"`
	ShippingAddress string `json:"shippingAddress"`
}

type Order struct {
	ID              string    `json:"id"`
	OrderNumber     string    `json:"orderNumber"`
	UserID          string    `json:"userId"`
	Subtotal        int64     `json:"subtotal"`
	TotalAmount     int64     `json:"totalAmount"`
	Discount        int64     `json:"discount"`
	ShippingCharge  int64     `json:"shippingCharge"`
	ShippingAddress string    `json:"shippingAddress"`
	CreatedAt       time.Time `json:"createdAt"`
}

type CreateOrderItemRequest struct {
	OrderID     string `json:"orderId"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	TotalPrice  int64  `json:"totalPrice"`
}

type OrderItem struct {
	ID          string `json:"id"`
	OrderID     string `json:"orderId"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	TotalPrice  int64  `json:"totalPrice"`
}
