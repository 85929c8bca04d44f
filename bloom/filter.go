// Package bloom provides probabilistic URL deduplication for
// discovery frontiers.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks URLs a discovery run has already queued. Membership
// answers may have false positives but never false negatives, so a
// run can only under-visit, not revisit.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter sizes a filter for n expected URLs at the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Seen records the URL and reports whether it was already present.
// The check and the insert happen as one operation.
func (f *Filter) Seen(url string) bool {
	return f.f.TestOrAddString(url)
}

// Test reports whether the URL might have been recorded, without
// recording it.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount approximates the number of recorded URLs.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
