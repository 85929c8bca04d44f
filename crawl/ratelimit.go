package crawl

import (
	"context"
	"sync"

	"github.com/fwojciec/docslice"
	"golang.org/x/time/rate"
)

var _ docslice.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter enforces a per-domain request rate with token
// buckets. Domains are independent: waiting on one never delays
// requests to another.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int
}

// NewDomainLimiter creates a limiter allowing rps requests per second
// to each domain, with up to burst requests passing immediately.
// A burst below 1 is treated as 1.
func NewDomainLimiter(rps float64, burst int) *DomainLimiter {
	if burst < 1 {
		burst = 1
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
	}
}

// Wait blocks until the domain's bucket has a token, or until the
// context is canceled.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.limiterFor(domain).Wait(ctx)
}

func (d *DomainLimiter) limiterFor(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), d.burst)
		d.limiters[domain] = limiter
	}
	return limiter
}
