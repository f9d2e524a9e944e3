// Package pricing derives money amounts from cart contents and the fixed
// storefront policy constants. Pure functions, no side effects.
package pricing

import "shopora/internal/cart"

// Policy constants, in source currency units.
const (
	Discount       int64 = 100
	ShippingCharge int64 = 50
)

type Breakdown struct {
	Subtotal       int64 `json:"subtotal"`
	Discount       int64 `json:"discount"`
	ShippingCharge int64 `json:"shippingCharge"`
	GrandTotal     int64 `json:"grandTotal"`
}

// Subtotal sums unitPrice x quantity over the lines. A line without a
// resolved product snapshot contributes 0.
func Subtotal(lines []cart.Line) int64 {
	var sum int64
	for _, line := range lines {
		if line.Product == nil {
			continue
		}
		sum += line.Product.UnitPrice * int64(line.Quantity)
	}
	return sum
}

// Total is subtotal - discount + shipping. Not floored at zero: a discount
// exceeding the subtotal yields a negative total.
func Total(subtotal, discount, shipping int64) int64 {
	return subtotal - discount + shipping
}

// Compute builds the full breakdown under the fixed policy constants.
func Compute(lines []cart.Line) Breakdown {
	subtotal := Subtotal(lines)
	return Breakdown{
		Subtotal:       subtotal,
		Discount:       Discount,
		ShippingCharge: ShippingCharge,
		GrandTotal:     Total(subtotal, Discount, ShippingCharge),
	}
}
