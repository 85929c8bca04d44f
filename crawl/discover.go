// Package crawl provides scoped page discovery built from the
// docslice primitives: a Bloom-backed URL frontier, per-domain rate
// limiting, and a fetch-summarize-convert loop that follows in-scope
// links.
package crawl

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docslice"
	"github.com/google/uuid"
)

// Frontier sizing for discovery runs.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// DefaultMaxPages limits a discovery run when no cap is configured.
const DefaultMaxPages = 100

// PageIssue records a page that failed during discovery.
type PageIssue struct {
	URL string
	Err error
}

// Result holds the outcome of one discovery run.
type Result struct {
	// RunID uniquely identifies the run in logs and diagnostics.
	RunID string

	// Pages are the discovered pages in visit order.
	Pages []docslice.DiscoveredPage

	// Failed records pages that could not be fetched or processed.
	// Failures never abort the run.
	Failed []PageIssue
}

// Discoverer walks a site section page by page: fetch, summarize,
// extract main content, convert to markdown, then follow the
// summary's in-scope links.
type Discoverer struct {
	Fetcher    docslice.Fetcher
	Summarizer docslice.PageSummarizer
	Extractor  docslice.Extractor
	Converter  docslice.Converter
	Limiter    docslice.DomainLimiter

	// MaxPages caps the number of pages visited per run.
	// Zero means DefaultMaxPages.
	MaxPages int
}

// Discover runs a scoped discovery starting from seedURL. The seed
// must be inside the scope; every followed link is gated by it. Pages
// whose content hashes to an already-seen value are visited but not
// emitted twice.
func (d *Discoverer) Discover(ctx context.Context, seedURL string, scope docslice.Scope) (*Result, error) {
	if !scope.Contains(seedURL) {
		return nil, docslice.Errorf(docslice.EINVALID, "seed URL %s is out of scope", seedURL)
	}

	maxPages := d.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(docslice.DiscoveredLink{
		URL:      seedURL,
		Priority: docslice.PrioritySeed,
	})

	result := &Result{RunID: uuid.New().String()}
	seenHashes := make(map[string]bool)
	visited := 0

	for visited < maxPages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		link, ok := frontier.Pop()
		if !ok {
			break
		}
		visited++

		page, links, err := d.processPage(ctx, link.URL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			result.Failed = append(result.Failed, PageIssue{URL: link.URL, Err: err})
			continue
		}

		if !seenHashes[page.ContentHash] {
			seenHashes[page.ContentHash] = true
			result.Pages = append(result.Pages, *page)
		}

		for _, l := range links {
			if scope.Contains(l.URL) {
				frontier.Push(docslice.DiscoveredLink{
					URL:      l.URL,
					Priority: docslice.PriorityContent,
					Text:     l.Text,
				})
			}
		}
	}

	return result, nil
}

// processPage fetches one URL and turns it into a DiscoveredPage plus
// the outbound links to consider next.
func (d *Discoverer) processPage(ctx context.Context, pageURL string) (*docslice.DiscoveredPage, []docslice.SummaryLink, error) {
	if d.Limiter != nil {
		if err := d.Limiter.Wait(ctx, domainOf(pageURL)); err != nil {
			return nil, nil, err
		}
	}

	res, err := d.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, nil, err
	}

	summary, err := d.Summarizer.Summarize(res, 0)
	if err != nil {
		return nil, nil, err
	}

	extracted, err := d.Extractor.Extract(res.Body)
	if err != nil {
		return nil, nil, err
	}

	markdown := ""
	if extracted.ContentHTML != "" {
		markdown, err = d.Converter.Convert(extracted.ContentHTML)
		if err != nil {
			return nil, nil, err
		}
	}

	title := extracted.Title
	if title == "" {
		title = summary.Title
	}

	page := &docslice.DiscoveredPage{
		URL:         pageURL,
		Title:       title,
		Markdown:    markdown,
		ContentHash: ComputeHash(markdown),
	}
	return page, summary.Links, nil
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}

// domainOf returns the host of a URL for rate limiting.
// Unparsable URLs share one bucket.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
