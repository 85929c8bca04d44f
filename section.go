package docslice

// HeadingNode represents one heading element in document order.
type HeadingNode struct {
	// Rank is the heading's nesting depth, 1 (most significant)
	// through 6. Ranks are the document's own depths; no
	// renumbering or normalization is applied.
	Rank int `json:"rank"`

	// ID is the heading's resolved identifier: the id attribute on
	// the heading element itself, else the id of a nested anchor,
	// else empty.
	ID string `json:"id,omitempty"`

	// Text is the heading's trimmed text content.
	Text string `json:"text"`

	// Position is the heading's ordinal in document order.
	Position int `json:"position"`
}

// SectionQuery identifies a target heading for section extraction.
// At least one of ID or HeadingText must be set. ID is checked first;
// HeadingText matches case-insensitively against a heading's trimmed
// text and requires exact equality, not a substring match.
type SectionQuery struct {
	ID          string
	HeadingText string
}

// SectionResult holds the bounded content owned by one heading, ending
// before the next heading of equal or higher rank.
type SectionResult struct {
	// Found reports whether a heading matched the query. A lookup
	// miss is a value, not an error; Reason says why.
	Found  bool   `json:"found"`
	Reason string `json:"reason,omitempty"`

	// HeadingText is the matched heading's trimmed text.
	HeadingText string `json:"headingText,omitempty"`

	// ID is the query's explicit identifier if given, else the
	// matched heading's own resolved identifier.
	ID string `json:"id,omitempty"`

	// HTML is the serialized markup of the section's elements. An
	// element whose markup would push the total past the size budget
	// is never partially included.
	HTML string `json:"html,omitempty"`

	// Text is the section's plain text, one block per element,
	// joined by blank lines.
	Text string `json:"text,omitempty"`

	// CodeBlocks holds the trimmed text of preformatted elements in
	// encounter order.
	CodeBlocks []string `json:"codeBlocks,omitempty"`

	// Truncated reports that the size budget stopped the walk before
	// the section's natural boundary.
	Truncated bool `json:"truncated,omitempty"`
}

// SectionService builds heading outlines and extracts heading-scoped
// sections from HTML documents.
type SectionService interface {
	// Outline parses HTML and returns all headings (H1-H6) in
	// document order.
	Outline(html string) ([]HeadingNode, error)

	// ExtractSection locates the first heading matching the query and
	// collects the content between it and the next heading of equal
	// or higher rank, bounded by maxChars of serialized markup.
	ExtractSection(html string, query SectionQuery, maxChars int) (*SectionResult, error)
}
