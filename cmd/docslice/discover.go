package main

import (
	"fmt"
	"net/url"

	"github.com/fwojciec/docslice"
	"github.com/fwojciec/docslice/crawl"
)

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	seed, err := url.Parse(c.URL)
	if err != nil || seed.Host == "" {
		return docslice.Errorf(docslice.EINVALID, "invalid seed URL %q", c.URL)
	}

	scope := docslice.Scope{
		Hosts:      c.Host,
		PathPrefix: c.PathPrefix,
	}
	if len(scope.Hosts) == 0 {
		scope.Hosts = []string{seed.Hostname()}
	}
	if scope.PathPrefix == "" {
		scope.PathPrefix = seed.Path
	}

	d := &crawl.Discoverer{
		Fetcher:    deps.Fetcher,
		Summarizer: deps.Summarizer,
		Extractor:  deps.Extractor,
		Converter:  deps.Converter,
		Limiter:    crawl.NewDomainLimiter(c.RPS, 1),
		MaxPages:   c.MaxPages,
	}

	result, err := d.Discover(deps.Ctx, c.URL, scope)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docslice.ErrorMessage(err))
		return err
	}

	for _, issue := range result.Failed {
		fmt.Fprintf(deps.Stderr, "failed %s: %s\n", issue.URL, docslice.ErrorMessage(issue.Err))
	}

	if len(result.Pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages discovered.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Discovered %d pages (run %s):\n\n", len(result.Pages), result.RunID)
	for i, page := range result.Pages {
		title := page.Title
		if title == "" {
			title = page.URL
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s\n     %s\n", i+1, title, page.URL)
	}

	return nil
}
