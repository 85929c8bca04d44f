// Package http provides HTTP-based implementations of docslice.Fetcher
// and docslice.SitemapService.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/docslice"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements docslice.Fetcher at compile time.
var _ docslice.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves resources from URLs using HTTP requests.
// Redirects are followed by the underlying client; a non-success
// status is a fetch failure. No retries are performed.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient sets the HTTP client, overriding the timeout option.
// Useful for tests with httptest servers.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the resource at the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*docslice.Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, docslice.Errorf(docslice.EINVALID, "creating request for %s: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, docslice.Errorf(docslice.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, docslice.Errorf(docslice.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, docslice.Errorf(docslice.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return &docslice.Resource{
		URL:         resp.Request.URL.String(),
		ContentType: resp.Header.Get("Content-Type"),
		Body:        string(body),
	}, nil
}
