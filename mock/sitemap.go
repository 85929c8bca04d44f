// Package mock provides function-field mock implementations of the
// docslice service interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/docslice"
)

var _ docslice.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of docslice.SitemapService.
type SitemapService struct {
	ResolveFn  func(ctx context.Context, sitemapURL string, opts docslice.ResolveOptions) (*docslice.ResolveResult, error)
	DiscoverFn func(ctx context.Context, baseURL string, opts docslice.ResolveOptions) (*docslice.ResolveResult, error)
}

func (s *SitemapService) Resolve(ctx context.Context, sitemapURL string, opts docslice.ResolveOptions) (*docslice.ResolveResult, error) {
	return s.ResolveFn(ctx, sitemapURL, opts)
}

func (s *SitemapService) Discover(ctx context.Context, baseURL string, opts docslice.ResolveOptions) (*docslice.ResolveResult, error) {
	return s.DiscoverFn(ctx, baseURL, opts)
}
