package docslice

import (
	"context"
	"strings"
)

// SitemapEntry represents one page entry from a URL-set sitemap.
// Entries have no identity beyond Loc; a resolution's output is
// logically a set keyed by Loc with first occurrence winning.
type SitemapEntry struct {
	Loc        string   `json:"loc"`
	LastMod    string   `json:"lastmod,omitempty"`
	ChangeFreq string   `json:"changefreq,omitempty"`
	Priority   *float64 `json:"priority,omitempty"`
}

// SitemapKind discriminates the decoded shape of a sitemap document.
type SitemapKind int

// Sitemap document shapes. A document that is valid XML but matches
// neither recognized root is SitemapEmpty, which resolves to zero
// entries rather than an error.
const (
	SitemapEmpty SitemapKind = iota
	SitemapIndex
	SitemapURLSet
)

// Sitemap is the tagged result of decoding one sitemap document.
// Exactly one of Children or Entries is populated, according to Kind.
type Sitemap struct {
	Kind     SitemapKind
	Children []string       // child sitemap URLs, Kind == SitemapIndex
	Entries  []SitemapEntry // page entries, Kind == SitemapURLSet
}

// ResolveIssue records a sitemap branch that was skipped during
// resolution, with the failure that caused the skip.
type ResolveIssue struct {
	URL string
	Err error
}

// ResolveResult holds the flattened entries of a sitemap tree plus
// diagnostics for any branches that could not be resolved.
type ResolveResult struct {
	Entries []SitemapEntry
	Skipped []ResolveIssue
}

// ResolveOptions configures a resolution call.
type ResolveOptions struct {
	// MaxEntries caps the number of entries returned after filtering.
	// Zero means no cap.
	MaxEntries int

	// Filter is applied to entry Locs after the tree is flattened.
	// Nil means all entries pass.
	Filter *EntryFilter
}

// SitemapService resolves sitemap trees into flat entry lists.
type SitemapService interface {
	// Resolve fetches sitemapURL and recursively resolves any index
	// children into a flat, deduplicated entry list. Cycles between
	// sitemaps terminate; each reachable entry appears exactly once,
	// in child order with first occurrence winning. A failed child
	// branch is skipped and recorded in the result's Skipped list;
	// only a root-level fetch or parse failure fails the call.
	Resolve(ctx context.Context, sitemapURL string, opts ResolveOptions) (*ResolveResult, error)

	// Discover finds a site's sitemap locations from robots.txt
	// Sitemap directives, falling back to /sitemap.xml, and resolves
	// each. Returns an empty result if the site has no sitemap.
	Discover(ctx context.Context, baseURL string, opts ResolveOptions) (*ResolveResult, error)
}

// EntryFilter filters sitemap entries by substring tokens over Loc.
type EntryFilter struct {
	// Include tokens - if set, a Loc must contain at least one token.
	Include []string

	// Exclude tokens - a Loc containing any token is excluded.
	// Exclude is applied after Include.
	Exclude []string
}

// Match returns true if the URL passes the filter.
// If the filter is nil, all URLs pass.
func (f *EntryFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	if len(f.Include) > 0 {
		matched := false
		for _, tok := range f.Include {
			if strings.Contains(url, tok) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, tok := range f.Exclude {
		if strings.Contains(url, tok) {
			return false
		}
	}

	return true
}
