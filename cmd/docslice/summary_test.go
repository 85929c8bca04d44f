package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/docslice"
	main "github.com/fwojciec/docslice/cmd/docslice"
	"github.com/fwojciec/docslice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints title, headings, body, and links", func(t *testing.T) {
		t.Parallel()

		summarizer := &mock.PageSummarizer{
			SummarizeFn: func(res *docslice.Resource, maxChars int) (*docslice.PageSummary, error) {
				assert.Equal(t, 2000, maxChars)
				return &docslice.PageSummary{
					Title:           "Guide",
					MetaDescription: "A guide.",
					BodyText:        "Welcome to the guide.",
					Headings: []docslice.SummaryHeading{
						{Rank: 1, Text: "Guide"},
						{Rank: 2, Text: "Setup"},
					},
					Links: []docslice.SummaryLink{
						{URL: "https://example.com/docs/setup"},
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     stdout,
			Stderr:     &bytes.Buffer{},
			Fetcher:    pageFetcher("<h1>Guide</h1>"),
			Summarizer: summarizer,
		}

		cmd := &main.SummaryCmd{URL: "https://example.com/docs", MaxChars: 2000}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Title: Guide")
		assert.Contains(t, output, "Description: A guide.")
		assert.Contains(t, output, "h1 Guide")
		assert.Contains(t, output, "h2 Setup")
		assert.Contains(t, output, "Welcome to the guide.")
		assert.Contains(t, output, "Links (1):")
		assert.Contains(t, output, "https://example.com/docs/setup")
	})

	t.Run("returns error for non-HTML pages", func(t *testing.T) {
		t.Parallel()

		summarizer := &mock.PageSummarizer{
			SummarizeFn: func(res *docslice.Resource, maxChars int) (*docslice.PageSummary, error) {
				return nil, docslice.Errorf(docslice.EUNSUPPORTED, "unsupported content type %q", "application/pdf")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:        context.Background(),
			Stdout:     &bytes.Buffer{},
			Stderr:     stderr,
			Fetcher:    pageFetcher("%PDF-1.4"),
			Summarizer: summarizer,
		}

		cmd := &main.SummaryCmd{URL: "https://example.com/file.pdf"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, docslice.EUNSUPPORTED, docslice.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}
