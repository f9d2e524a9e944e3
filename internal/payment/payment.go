package payment

import "context"

type Status string

const (
	StatusPaid   Status = "Paid"
	StatusFailed Status = "Failed"
)

type Result struct {
	Status Status `json:"status"`
}

// Gateway charges the grand total of a checkout. The production
// implementation is an external payment provider; this repo ships a
// simulator.
type Gateway interface {
	Charge(ctx context.Context, amount int64) (*Result, error)
}
