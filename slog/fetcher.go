package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docslice"
)

// Ensure LoggingFetcher implements docslice.Fetcher.
var _ docslice.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   docslice.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next docslice.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (res *docslice.Resource, err error) {
	defer func(begin time.Time) {
		size := 0
		contentType := ""
		if res != nil {
			size = len(res.Body)
			contentType = res.ContentType
		}
		f.logger.Debug("fetch",
			"url", url,
			"bytes", size,
			"contentType", contentType,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
