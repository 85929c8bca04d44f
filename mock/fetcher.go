package mock

import (
	"context"

	"github.com/fwojciec/docslice"
)

var _ docslice.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docslice.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*docslice.Resource, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*docslice.Resource, error) {
	return f.FetchFn(ctx, url)
}
