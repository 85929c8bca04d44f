package main

import (
	"fmt"

	"github.com/fwojciec/docslice"
)

// Run executes the urls command.
func (c *UrlsCmd) Run(deps *Dependencies) error {
	opts := docslice.ResolveOptions{
		MaxEntries: c.Max,
	}
	if len(c.Include) > 0 || len(c.Exclude) > 0 {
		opts.Filter = &docslice.EntryFilter{
			Include: c.Include,
			Exclude: c.Exclude,
		}
	}

	var result *docslice.ResolveResult
	var err error
	if c.Sitemap {
		result, err = deps.Sitemaps.Resolve(deps.Ctx, c.URL, opts)
	} else {
		result, err = deps.Sitemaps.Discover(deps.Ctx, c.URL, opts)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docslice.ErrorMessage(err))
		return err
	}

	for _, issue := range result.Skipped {
		fmt.Fprintf(deps.Stderr, "skipped %s: %s\n", issue.URL, docslice.ErrorMessage(issue.Err))
	}

	if len(result.Entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs found.")
		return nil
	}

	for _, entry := range result.Entries {
		fmt.Fprintln(deps.Stdout, entry.Loc)
	}
	fmt.Fprintf(deps.Stderr, "%d URLs\n", len(result.Entries))

	return nil
}
