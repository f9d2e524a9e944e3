package payment

import (
	"context"
	"time"

	"shopora/internal/logger"

	"go.uber.org/zap"
)

// Simulator resolves every charge to Paid after a fixed delay. Placeholder
// for a real gateway integration.
type Simulator struct {
	delay time.Duration
}

func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{delay: delay}
}

func (s *Simulator) Charge(ctx context.Context, amount int64) (*Result, error) {
	log := logger.WithLayer(ctx, "payment").With(zap.Int64("amount", amount))
	log.Info("processing simulated payment")

	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	log.Info("simulated payment resolved", zap.String("status", string(StatusPaid)))
	return &Result{Status: StatusPaid}, nil
}
