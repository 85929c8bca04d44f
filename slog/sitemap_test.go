package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docslice"
	"github.com/fwojciec/docslice/mock"
	docslog "github.com/fwojciec/docslice/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSitemapService_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("logs entry and skip counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			ResolveFn: func(ctx context.Context, sitemapURL string, opts docslice.ResolveOptions) (*docslice.ResolveResult, error) {
				return &docslice.ResolveResult{
					Entries: []docslice.SitemapEntry{
						{Loc: "https://example.com/docs/a"},
						{Loc: "https://example.com/docs/b"},
					},
					Skipped: []docslice.ResolveIssue{
						{URL: "https://example.com/broken.xml"},
					},
				}, nil
			},
		}

		svc := docslog.NewLoggingSitemapService(inner, logger)
		result, err := svc.Resolve(context.Background(), "https://example.com/sitemap.xml", docslice.ResolveOptions{})

		require.NoError(t, err)
		require.Len(t, result.Entries, 2)
		output := buf.String()
		assert.Contains(t, output, "sitemap resolve")
		assert.Contains(t, output, "url=https://example.com/sitemap.xml")
		assert.Contains(t, output, "entries=2")
		assert.Contains(t, output, "skipped=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			ResolveFn: func(ctx context.Context, sitemapURL string, opts docslice.ResolveOptions) (*docslice.ResolveResult, error) {
				return nil, errors.New("root fetch failed")
			},
		}

		svc := docslog.NewLoggingSitemapService(inner, logger)
		_, err := svc.Resolve(context.Background(), "https://example.com/sitemap.xml", docslice.ResolveOptions{})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "entries=0")
		assert.Contains(t, output, "err=\"root fetch failed\"")
	})
}

func TestLoggingSitemapService_Discover(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.SitemapService{
		DiscoverFn: func(ctx context.Context, baseURL string, opts docslice.ResolveOptions) (*docslice.ResolveResult, error) {
			return &docslice.ResolveResult{
				Entries: []docslice.SitemapEntry{{Loc: "https://example.com/docs"}},
			}, nil
		},
	}

	svc := docslog.NewLoggingSitemapService(inner, logger)
	result, err := svc.Discover(context.Background(), "https://example.com", docslice.ResolveOptions{})

	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	output := buf.String()
	assert.Contains(t, output, "sitemap discovery")
	assert.Contains(t, output, "entries=1")
}
