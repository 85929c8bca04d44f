package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/docslice"
	"github.com/fwojciec/docslice/etree"
	"golang.org/x/sync/errgroup"
)

// childConcurrency bounds parallel fetches of one index's children.
const childConcurrency = 10

// Ensure SitemapService implements docslice.SitemapService.
var _ docslice.SitemapService = (*SitemapService)(nil)

// SitemapService resolves sitemap trees via HTTP.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// Resolve fetches sitemapURL and recursively resolves any index
// children into a flat, deduplicated entry list.
func (s *SitemapService) Resolve(ctx context.Context, sitemapURL string, opts docslice.ResolveOptions) (*docslice.ResolveResult, error) {
	run := &resolveRun{
		svc:     s,
		visited: make(map[string]bool),
	}

	entries, err := run.resolve(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	return finishResult(entries, run.skipped, opts), nil
}

// Discover finds a site's sitemap locations from robots.txt Sitemap
// directives, falling back to /sitemap.xml, and resolves each.
//
// When baseURL has a non-root path (e.g., https://example.com/docs/),
// only entries inside that section of the site are returned.
func (s *SitemapService) Discover(ctx context.Context, baseURL string, opts docslice.ResolveOptions) (*docslice.ResolveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, docslice.Errorf(docslice.EINVALID, "invalid base URL: %v", err)
	}

	// Sitemaps live at the domain root regardless of the section path.
	sitemapBase := *base
	sitemapBase.Path = ""

	sitemapURLs, err := s.findSitemapURLs(ctx, &sitemapBase)
	if err != nil {
		return nil, err
	}
	if len(sitemapURLs) == 0 {
		return &docslice.ResolveResult{Entries: []docslice.SitemapEntry{}}, nil
	}

	// One run's visited set spans all discovered sitemaps so a sitemap
	// referenced both from robots.txt and an index resolves once.
	run := &resolveRun{
		svc:     s,
		visited: make(map[string]bool),
	}

	var all []docslice.SitemapEntry
	for _, sitemapURL := range sitemapURLs {
		entries, err := run.resolve(ctx, sitemapURL)
		if err != nil {
			// A bad robots.txt entry should not sink the others.
			run.record(sitemapURL, err)
			continue
		}
		all = append(all, entries...)
	}

	if base.Path != "" && base.Path != "/" {
		scope := docslice.Scope{
			Hosts:      []string{base.Hostname()},
			PathPrefix: base.Path,
		}
		var scoped []docslice.SitemapEntry
		for _, e := range all {
			if scope.Contains(e.Loc) {
				scoped = append(scoped, e)
			}
		}
		all = scoped
	}

	return finishResult(all, run.skipped, opts), nil
}

// finishResult deduplicates entries by Loc (first occurrence wins),
// applies the caller's filter, and caps the count.
func finishResult(entries []docslice.SitemapEntry, skipped []docslice.ResolveIssue, opts docslice.ResolveOptions) *docslice.ResolveResult {
	seen := make(map[string]bool, len(entries))
	out := make([]docslice.SitemapEntry, 0, len(entries))
	for _, e := range entries {
		if seen[e.Loc] {
			continue
		}
		seen[e.Loc] = true
		if !opts.Filter.Match(e.Loc) {
			continue
		}
		out = append(out, e)
		if opts.MaxEntries > 0 && len(out) >= opts.MaxEntries {
			break
		}
	}
	return &docslice.ResolveResult{Entries: out, Skipped: skipped}
}

// resolveRun holds the state shared by one resolution call: the
// visited set guarding cycle safety and the skipped-branch
// diagnostics. Both are guarded by one mutex because index children
// resolve concurrently.
type resolveRun struct {
	svc *SitemapService

	mu      sync.Mutex
	visited map[string]bool
	skipped []docslice.ResolveIssue
}

// markVisited marks the URL and reports whether it was new. Marking
// happens before the fetch so concurrent branches can never fetch the
// same sitemap twice.
func (r *resolveRun) markVisited(sitemapURL string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.visited[sitemapURL] {
		return false
	}
	r.visited[sitemapURL] = true
	return true
}

func (r *resolveRun) record(sitemapURL string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipped = append(r.skipped, docslice.ResolveIssue{URL: sitemapURL, Err: err})
}

// resolve fetches and decodes one sitemap, recursing into index
// children. An already-visited URL resolves to nothing.
func (r *resolveRun) resolve(ctx context.Context, sitemapURL string) ([]docslice.SitemapEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !r.markVisited(sitemapURL) {
		return nil, nil
	}

	body, err := r.svc.fetchURL(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	sm, err := etree.Decode(body)
	if err != nil {
		return nil, err
	}

	switch sm.Kind {
	case docslice.SitemapIndex:
		return r.resolveChildren(ctx, sm.Children)
	case docslice.SitemapURLSet:
		return sm.Entries, nil
	default:
		return nil, nil
	}
}

// resolveChildren resolves an index's children concurrently. Output
// order follows the child list, not completion order. A failed child
// subtree is skipped and recorded; it never fails the parent.
func (r *resolveRun) resolveChildren(ctx context.Context, children []string) ([]docslice.SitemapEntry, error) {
	results := make([][]docslice.SitemapEntry, len(children))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(childConcurrency)

	for i, child := range children {
		i, child := i, child
		g.Go(func() error {
			entries, err := r.resolve(gctx, child)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				r.record(child, err)
				return nil
			}
			results[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []docslice.SitemapEntry
	for _, entries := range results {
		all = append(all, entries...)
	}
	return all, nil
}

// findSitemapURLs discovers sitemap URLs from robots.txt or falls back
// to /sitemap.xml.
func (s *SitemapService) findSitemapURLs(ctx context.Context, base *url.URL) ([]string, error) {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"})
	sitemaps, err := s.parseSitemapsFromRobots(ctx, robotsURL.String())
	if err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}

	sitemapURL := base.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	exists, err := s.urlExists(ctx, sitemapURL.String())
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if exists {
		return []string{sitemapURL.String()}, nil
	}

	return nil, nil
}

// parseSitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (s *SitemapService) parseSitemapsFromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.fetchURL(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			sitemapURL := strings.TrimSpace(line[len("sitemap:"):])
			if sitemapURL != "" {
				sitemaps = append(sitemaps, sitemapURL)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, docslice.Errorf(docslice.EUNAVAILABLE, "reading robots.txt: %v", err)
	}

	return sitemaps, nil
}

// fetchURL fetches a URL and returns the response body.
func (s *SitemapService) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, docslice.Errorf(docslice.EINVALID, "creating request: %v", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, docslice.Errorf(docslice.EUNAVAILABLE, "fetching %s: %v", targetURL, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, docslice.Errorf(docslice.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}

// urlExists checks if a URL returns 200 OK.
func (s *SitemapService) urlExists(ctx context.Context, targetURL string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, targetURL, nil)
	if err != nil {
		return false, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
