package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docslice"
)

// Run executes the outline command.
func (c *OutlineCmd) Run(deps *Dependencies) error {
	res, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docslice.ErrorMessage(err))
		return err
	}

	headings, err := deps.Sections.Outline(res.Body)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docslice.ErrorMessage(err))
		return err
	}

	if len(headings) == 0 {
		fmt.Fprintln(deps.Stdout, "No headings found.")
		return nil
	}

	for _, h := range headings {
		indent := strings.Repeat("  ", h.Rank-1)
		if h.ID != "" {
			fmt.Fprintf(deps.Stdout, "%sh%d %s (#%s)\n", indent, h.Rank, h.Text, h.ID)
		} else {
			fmt.Fprintf(deps.Stdout, "%sh%d %s\n", indent, h.Rank, h.Text)
		}
	}

	return nil
}
