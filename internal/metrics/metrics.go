package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Checkout aggregates the saga counters exposed on /api/metrics.
type Checkout struct {
	Started   Counter
	Completed Counter
	Failed    Counter
}

type CheckoutSnapshot struct {
	Started   uint64 `json:"started"`
	Completed uint64 `json:"completed"`
	Failed    uint64 `json:"failed"`
}

func (c *Checkout) Snapshot() CheckoutSnapshot {
	return CheckoutSnapshot{
		Started:   c.Started.Load(),
		Completed: c.Completed.Load(),
		Failed:    c.Failed.Load(),
	}
}
