// Package slog provides logging decorators for docslice services
// using the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docslice"
)

// Ensure LoggingSitemapService implements docslice.SitemapService.
var _ docslice.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with debug logging.
type LoggingSitemapService struct {
	next   docslice.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next docslice.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// Resolve delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) Resolve(ctx context.Context, sitemapURL string, opts docslice.ResolveOptions) (result *docslice.ResolveResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap resolve",
			"url", sitemapURL,
			"entries", entryCount(result),
			"skipped", skippedCount(result),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Resolve(ctx, sitemapURL, opts)
}

// Discover delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) Discover(ctx context.Context, baseURL string, opts docslice.ResolveOptions) (result *docslice.ResolveResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap discovery",
			"url", baseURL,
			"entries", entryCount(result),
			"skipped", skippedCount(result),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Discover(ctx, baseURL, opts)
}

func entryCount(r *docslice.ResolveResult) int {
	if r == nil {
		return 0
	}
	return len(r.Entries)
}

func skippedCount(r *docslice.ResolveResult) int {
	if r == nil {
		return 0
	}
	return len(r.Skipped)
}
