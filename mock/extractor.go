package mock

import "github.com/fwojciec/docslice"

var _ docslice.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docslice.Extractor. Tests
// assign ExtractFn to control the content returned for any input.
type Extractor struct {
	ExtractFn func(html string) (*docslice.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docslice.ExtractResult, error) {
	return e.ExtractFn(html)
}
