package main

import (
	"fmt"

	"github.com/fwojciec/docslice"
)

// Run executes the summary command.
func (c *SummaryCmd) Run(deps *Dependencies) error {
	res, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docslice.ErrorMessage(err))
		return err
	}

	summary, err := deps.Summarizer.Summarize(res, c.MaxChars)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docslice.ErrorMessage(err))
		return err
	}

	if summary.Title != "" {
		fmt.Fprintf(deps.Stdout, "Title: %s\n", summary.Title)
	}
	if summary.MetaDescription != "" {
		fmt.Fprintf(deps.Stdout, "Description: %s\n", summary.MetaDescription)
	}

	if len(summary.Headings) > 0 {
		fmt.Fprintln(deps.Stdout, "\nHeadings:")
		for _, h := range summary.Headings {
			fmt.Fprintf(deps.Stdout, "  h%d %s\n", h.Rank, h.Text)
		}
	}

	if summary.BodyText != "" {
		fmt.Fprintf(deps.Stdout, "\n%s\n", summary.BodyText)
	}

	if len(summary.Links) > 0 {
		fmt.Fprintf(deps.Stdout, "\nLinks (%d):\n", len(summary.Links))
		for _, l := range summary.Links {
			fmt.Fprintf(deps.Stdout, "  %s\n", l.URL)
		}
	}

	return nil
}
