package mock

import "github.com/fwojciec/docslice"

var _ docslice.Converter = (*Converter)(nil)

// Converter is a mock implementation of docslice.Converter. Tests
// assign ConvertFn to control the markdown returned for any input.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
