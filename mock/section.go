package mock

import "github.com/fwojciec/docslice"

var _ docslice.SectionService = (*SectionService)(nil)

// SectionService is a mock implementation of docslice.SectionService.
type SectionService struct {
	OutlineFn        func(html string) ([]docslice.HeadingNode, error)
	ExtractSectionFn func(html string, query docslice.SectionQuery, maxChars int) (*docslice.SectionResult, error)
}

func (s *SectionService) Outline(html string) ([]docslice.HeadingNode, error) {
	return s.OutlineFn(html)
}

func (s *SectionService) ExtractSection(html string, query docslice.SectionQuery, maxChars int) (*docslice.SectionResult, error) {
	return s.ExtractSectionFn(html, query, maxChars)
}
