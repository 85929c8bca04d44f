package crawl_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/fwojciec/docslice"
	"github.com/fwojciec/docslice/crawl"
	"github.com/fwojciec/docslice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type page struct {
	body  string
	links []docslice.SummaryLink
}

// site maps URLs to pages. newTestDiscoverer wires mocks that serve
// it, with summaries carrying each page's links and extraction
// returning the body as content.
type site map[string]page

func newTestDiscoverer(pages site) *crawl.Discoverer {
	return &crawl.Discoverer{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*docslice.Resource, error) {
				p, ok := pages[url]
				if !ok {
					return nil, docslice.Errorf(docslice.EUNAVAILABLE, "unexpected status 404 from %s", url)
				}
				return &docslice.Resource{URL: url, ContentType: "text/html", Body: p.body}, nil
			},
		},
		Summarizer: &mock.PageSummarizer{
			SummarizeFn: func(res *docslice.Resource, maxChars int) (*docslice.PageSummary, error) {
				return &docslice.PageSummary{Title: "t:" + res.URL, Links: pages[res.URL].links}, nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(html string) (*docslice.ExtractResult, error) {
				return &docslice.ExtractResult{ContentHTML: html}, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "md:" + html, nil
			},
		},
	}
}

func TestDiscoverer_Discover(t *testing.T) {
	t.Parallel()

	scope := docslice.Scope{Hosts: []string{"example.com"}, PathPrefix: "/docs"}

	t.Run("follows in-scope links and skips out-of-scope ones", func(t *testing.T) {
		t.Parallel()

		pages := site{
			"https://example.com/docs": {body: "root", links: []docslice.SummaryLink{
				{URL: "https://example.com/docs/a"},
				{URL: "https://example.com/blog/post"},
				{URL: "https://other.example.org/docs"},
			}},
			"https://example.com/docs/a": {body: "page a"},
		}

		d := newTestDiscoverer(pages)
		result, err := d.Discover(context.Background(), "https://example.com/docs", scope)

		require.NoError(t, err)
		require.Len(t, result.Pages, 2)
		assert.Equal(t, "https://example.com/docs", result.Pages[0].URL)
		assert.Equal(t, "https://example.com/docs/a", result.Pages[1].URL)
		assert.Equal(t, "md:page a", result.Pages[1].Markdown)
		assert.NotEmpty(t, result.RunID)
		assert.Empty(t, result.Failed)
	})

	t.Run("out-of-scope seed is invalid", func(t *testing.T) {
		t.Parallel()

		d := newTestDiscoverer(site{})
		_, err := d.Discover(context.Background(), "https://example.com/blog", scope)

		require.Error(t, err)
		assert.Equal(t, docslice.EINVALID, docslice.ErrorCode(err))
	})

	t.Run("max pages caps the visit count", func(t *testing.T) {
		t.Parallel()

		pages := site{}
		var links []docslice.SummaryLink
		for i := 0; i < 10; i++ {
			url := fmt.Sprintf("https://example.com/docs/p%d", i)
			links = append(links, docslice.SummaryLink{URL: url})
			pages[url] = page{body: fmt.Sprintf("page %d", i)}
		}
		pages["https://example.com/docs"] = page{body: "root", links: links}

		d := newTestDiscoverer(pages)
		d.MaxPages = 3
		result, err := d.Discover(context.Background(), "https://example.com/docs", scope)

		require.NoError(t, err)
		assert.Len(t, result.Pages, 3)
	})

	t.Run("pages with identical content are emitted once", func(t *testing.T) {
		t.Parallel()

		pages := site{
			"https://example.com/docs": {body: "root", links: []docslice.SummaryLink{
				{URL: "https://example.com/docs/a"},
				{URL: "https://example.com/docs/a-copy"},
			}},
			"https://example.com/docs/a":      {body: "same words"},
			"https://example.com/docs/a-copy": {body: "same words"},
		}

		d := newTestDiscoverer(pages)
		result, err := d.Discover(context.Background(), "https://example.com/docs", scope)

		require.NoError(t, err)
		require.Len(t, result.Pages, 2)
		assert.Equal(t, "https://example.com/docs/a", result.Pages[1].URL)
	})

	t.Run("failed pages are recorded without aborting the run", func(t *testing.T) {
		t.Parallel()

		pages := site{
			"https://example.com/docs": {body: "root", links: []docslice.SummaryLink{
				{URL: "https://example.com/docs/missing"},
				{URL: "https://example.com/docs/b"},
			}},
			"https://example.com/docs/b": {body: "page b"},
		}

		d := newTestDiscoverer(pages)
		result, err := d.Discover(context.Background(), "https://example.com/docs", scope)

		require.NoError(t, err)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, "https://example.com/docs/missing", result.Failed[0].URL)
		assert.Equal(t, docslice.EUNAVAILABLE, docslice.ErrorCode(result.Failed[0].Err))
		require.Len(t, result.Pages, 2)
	})

	t.Run("waits on the limiter per domain", func(t *testing.T) {
		t.Parallel()

		pages := site{
			"https://example.com/docs": {body: "root"},
		}

		var domains []string
		d := newTestDiscoverer(pages)
		d.Limiter = &mock.DomainLimiter{
			WaitFn: func(ctx context.Context, domain string) error {
				domains = append(domains, domain)
				return nil
			},
		}

		_, err := d.Discover(context.Background(), "https://example.com/docs", scope)

		require.NoError(t, err)
		assert.Equal(t, []string{"example.com"}, domains)
	})

	t.Run("canceled context stops the run", func(t *testing.T) {
		t.Parallel()

		d := newTestDiscoverer(site{"https://example.com/docs": {body: "root"}})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := d.Discover(ctx, "https://example.com/docs", scope)

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestComputeHash(t *testing.T) {
	t.Parallel()

	a := crawl.ComputeHash("content")
	b := crawl.ComputeHash("content")
	c := crawl.ComputeHash("different")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEmpty(t, a)
}
