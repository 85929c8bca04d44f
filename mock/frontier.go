package mock

import (
	"context"

	"github.com/fwojciec/docslice"
)

var _ docslice.URLFrontier = (*URLFrontier)(nil)

// URLFrontier is a mock implementation of docslice.URLFrontier.
type URLFrontier struct {
	PushFn func(link docslice.DiscoveredLink) bool
	PopFn  func() (docslice.DiscoveredLink, bool)
	LenFn  func() int
	SeenFn func(url string) bool
}

func (f *URLFrontier) Push(link docslice.DiscoveredLink) bool {
	return f.PushFn(link)
}

func (f *URLFrontier) Pop() (docslice.DiscoveredLink, bool) {
	return f.PopFn()
}

func (f *URLFrontier) Len() int {
	return f.LenFn()
}

func (f *URLFrontier) Seen(url string) bool {
	return f.SeenFn(url)
}

var _ docslice.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of docslice.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
