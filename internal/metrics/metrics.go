package metrics

import "sync/atomic"

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

// Registry holds the process-local counters surfaced on the admin stats
// endpoint. Counts reset on restart; durable numbers come from the database.
type Registry struct {
	HTTPRequests      Counter
	OrdersPlaced      Counter
	PaymentsProcessed Counter
}

func NewRegistry() *Registry {
	return &Registry{}
}
