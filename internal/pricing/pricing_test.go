package pricing

import (
	"testing"

	"shopora/internal/cart"

	"github.com/stretchr/testify/assert"
)

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		lines []cart.Line
		want  int64
	}{
		{
			name:  "EmptyCart",
			lines: nil,
			want:  0,
		},
		{
			name: "SingleLine",
			lines: []cart.Line{
				{ProductID: "p1", Quantity: 2, Product: &cart.Snapshot{UnitPrice: 500}},
			},
			want: 1000,
		},
		{
			name: "MultipleLines",
			lines: []cart.Line{
				{ProductID: "p1", Quantity: 2, Product: &cart.Snapshot{UnitPrice: 500}},
				{ProductID: "p2", Quantity: 3, Product: &cart.Snapshot{UnitPrice: 40}},
			},
			want: 1120,
		},
		{
			name: "UnresolvedSnapshotContributesZero",
			lines: []cart.Line{
				{ProductID: "p1", Quantity: 2, Product: &cart.Snapshot{UnitPrice: 500}},
				{ProductID: "p-gone", Quantity: 5, Product: nil},
			},
			want: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Subtotal(tt.lines))
		})
	}
}

func TestTotal(t *testing.T) {
	assert.Equal(t, int64(950), Total(1000, Discount, ShippingCharge))

	// No floor at zero: discount above subtotal goes negative.
	assert.Equal(t, int64(-30), Total(20, Discount, ShippingCharge))
}

func TestCompute(t *testing.T) {
	lines := []cart.Line{
		{ProductID: "p1", Quantity: 2, Product: &cart.Snapshot{UnitPrice: 500}},
	}

	got := Compute(lines)
	assert.Equal(t, Breakdown{
		Subtotal:       1000,
		Discount:       100,
		ShippingCharge: 50,
		GrandTotal:     950,
	}, got)
}
