// Package metrics holds the process-local counters exposed through the
// /metrics endpoint and the access log.
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

// Process-wide counters.
var (
	HTTPRequests  Counter
	HTTPErrors    Counter
	OrdersCreated Counter
	CartAdds      Counter
)

// Snapshot returns the current counter values for the metrics endpoint.
func Snapshot() map[string]uint64 {
	return map[string]uint64{
		"http_requests":  HTTPRequests.Load(),
		"http_errors":    HTTPErrors.Load(),
		"orders_created": OrdersCreated.Load(),
		"cart_adds":      CartAdds.Load(),
	}
}
