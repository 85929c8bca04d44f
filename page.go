package docslice

// SummaryHeading is one outline entry in a page summary.
type SummaryHeading struct {
	Rank int    `json:"rank"`
	Text string `json:"text"`
}

// SummaryLink is one outbound link collected from a page's primary
// content region, resolved to an absolute URL.
type SummaryLink struct {
	URL  string `json:"url"`
	Text string `json:"text,omitempty"`
}

// MaxSummaryLinks caps the number of links collected per summary.
// Links are not deduplicated; callers see raw document order.
const MaxSummaryLinks = 50

// PageSummary represents a page reduced to its readable essentials.
type PageSummary struct {
	Title           string `json:"title,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`

	// BodyText is the primary region's trimmed text, truncated at the
	// requested budget with a trailing marker when exceeded.
	BodyText  string `json:"bodyText"`
	Truncated bool   `json:"truncated,omitempty"`

	// Headings are the document's H1-H3 headings in document order,
	// taken from the original parse before chrome removal. Headings
	// with empty text are dropped.
	Headings []SummaryHeading `json:"headings,omitempty"`

	// Links come from the chosen content region only, capped at
	// MaxSummaryLinks.
	Links []SummaryLink `json:"links,omitempty"`
}

// PageSummarizer strips page chrome and reduces a fetched resource to
// a bounded summary.
type PageSummarizer interface {
	// Summarize returns the page's summary. It fails with an
	// EUNSUPPORTED error if the resource is not HTML.
	Summarize(res *Resource, maxChars int) (*PageSummary, error)
}

// DiscoveredPage is one page produced by a scoped discovery run.
type DiscoveredPage struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Markdown    string `json:"markdown"`
	ContentHash string `json:"contentHash"`
}
