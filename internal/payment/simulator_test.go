package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimulator_Charge(t *testing.T) {
	t.Run("ResolvesPaid", func(t *testing.T) {
		sim := NewSimulator(time.Millisecond)

		res, err := sim.Charge(context.Background(), 950)
		assert.NoError(t, err)
		assert.Equal(t, StatusPaid, res.Status)
	})

	t.Run("ContextCancelled", func(t *testing.T) {
		sim := NewSimulator(time.Minute)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := sim.Charge(ctx, 950)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
