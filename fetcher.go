package docslice

import "context"

// Resource is the outcome of fetching a URL: the final URL after
// redirects, the response content type, and the body as text.
type Resource struct {
	URL         string
	ContentType string
	Body        string
}

// Fetcher resolves URLs to raw text resources.
// Redirects are followed transparently; a non-success status is a
// fetch failure. No retries are performed.
type Fetcher interface {
	// Fetch retrieves the resource at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Resource, error)
}
