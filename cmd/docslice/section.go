package main

import (
	"fmt"

	"github.com/fwojciec/docslice"
)

// Run executes the section command.
func (c *SectionCmd) Run(deps *Dependencies) error {
	if c.ID == "" && c.Text == "" {
		return docslice.Errorf(docslice.EINVALID, "either --id or --text is required")
	}

	res, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docslice.ErrorMessage(err))
		return err
	}

	result, err := deps.Sections.ExtractSection(res.Body, docslice.SectionQuery{
		ID:          c.ID,
		HeadingText: c.Text,
	}, c.MaxChars)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docslice.ErrorMessage(err))
		return err
	}

	if !result.Found {
		fmt.Fprintf(deps.Stdout, "Section not found: %s\n", result.Reason)
		return nil
	}

	if result.ID != "" {
		fmt.Fprintf(deps.Stdout, "# %s (#%s)\n\n", result.HeadingText, result.ID)
	} else {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", result.HeadingText)
	}

	if c.Markdown && result.HTML != "" {
		markdown, err := deps.Converter.Convert(result.HTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docslice.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, markdown)
	} else if result.Text != "" {
		fmt.Fprintln(deps.Stdout, result.Text)
	}

	if len(result.CodeBlocks) > 0 {
		fmt.Fprintf(deps.Stderr, "%d code blocks\n", len(result.CodeBlocks))
	}
	if result.Truncated {
		fmt.Fprintln(deps.Stderr, "section truncated at size budget")
	}

	return nil
}
