package mock

import "github.com/fwojciec/docslice"

var _ docslice.PageSummarizer = (*PageSummarizer)(nil)

// PageSummarizer is a mock implementation of docslice.PageSummarizer.
type PageSummarizer struct {
	SummarizeFn func(res *docslice.Resource, maxChars int) (*docslice.PageSummary, error)
}

func (p *PageSummarizer) Summarize(res *docslice.Resource, maxChars int) (*docslice.PageSummary, error) {
	return p.SummarizeFn(res, maxChars)
}
