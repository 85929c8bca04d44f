package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docslice"
	"golang.org/x/net/html"
)

// headingSelector matches all heading levels in document order.
// Document order is load-bearing: a node's index in the selection is
// its Position.
const headingSelector = "h1, h2, h3, h4, h5, h6"

// Ensure SectionService implements docslice.SectionService.
var _ docslice.SectionService = (*SectionService)(nil)

// SectionService builds heading outlines and extracts heading-scoped
// sections. It is stateless; every call parses its own document.
type SectionService struct{}

// NewSectionService creates a new SectionService.
func NewSectionService() *SectionService {
	return &SectionService{}
}

// Outline parses HTML and returns all headings (H1-H6) in document order.
func (s *SectionService) Outline(rawHTML string) ([]docslice.HeadingNode, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	var headings []docslice.HeadingNode
	doc.Find(headingSelector).Each(func(i int, sel *goquery.Selection) {
		headings = append(headings, docslice.HeadingNode{
			Rank:     headingRank(sel.Get(0)),
			ID:       headingID(sel),
			Text:     strings.TrimSpace(sel.Text()),
			Position: i,
		})
	})

	return headings, nil
}

// ExtractSection locates the first heading matching the query and
// collects the content between it and the next heading of equal or
// higher rank, bounded by maxChars of serialized markup.
// A maxChars of zero or less means no size budget.
func (s *SectionService) ExtractSection(rawHTML string, query docslice.SectionQuery, maxChars int) (*docslice.SectionResult, error) {
	if query.ID == "" && query.HeadingText == "" {
		return nil, docslice.Errorf(docslice.EINVALID, "section query requires an id or heading text")
	}

	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	target := findTarget(doc, query)
	if target == nil {
		return &docslice.SectionResult{
			Found:  false,
			Reason: missReason(query),
		}, nil
	}

	node := target.Get(0)
	boundaryRank := headingRank(node)

	result := &docslice.SectionResult{
		Found:       true,
		HeadingText: strings.TrimSpace(target.Text()),
		ID:          query.ID,
	}
	if result.ID == "" {
		result.ID = headingID(target)
	}

	var markup strings.Builder
	var textBlocks []string

	// Walk element siblings following the heading, never its children.
	// The walk is exclusive at both ends: the target heading itself is
	// not content, and the boundary heading is not included.
	for n := node.NextSibling; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}

		if r := headingRank(n); r > 0 && r <= boundaryRank {
			break
		}

		serialized, err := renderNode(n)
		if err != nil {
			return nil, err
		}
		if maxChars > 0 && markup.Len()+len(serialized) > maxChars {
			// Never split an element mid-markup; stop before appending.
			result.Truncated = true
			break
		}
		markup.WriteString(serialized)

		if text := nodeText(n); text != "" {
			textBlocks = append(textBlocks, text)
		}

		result.CodeBlocks = append(result.CodeBlocks, codeBlocks(n)...)
	}

	result.HTML = markup.String()
	result.Text = strings.Join(textBlocks, "\n\n")
	return result, nil
}

// findTarget scans headings in document order and returns the first
// one matching the query by identifier or by case-insensitive exact
// text. First match wins; there is no scoring.
func findTarget(doc *goquery.Document, query docslice.SectionQuery) *goquery.Selection {
	wantText := strings.TrimSpace(query.HeadingText)

	var target *goquery.Selection
	doc.Find(headingSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if query.ID != "" && headingID(sel) == query.ID {
			target = sel
			return false
		}
		if wantText != "" && strings.EqualFold(strings.TrimSpace(sel.Text()), wantText) {
			target = sel
			return false
		}
		return true
	})
	return target
}

// codeBlocks collects the trimmed text of preformatted elements in a
// sibling subtree, in encounter order. A pre sibling contributes its
// own text; any other element contributes its pre descendants.
func codeBlocks(n *html.Node) []string {
	if n.Data == "pre" {
		if text := nodeText(n); text != "" {
			return []string{text}
		}
		return nil
	}

	var blocks []string
	goquery.NewDocumentFromNode(n).Find("pre").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})
	return blocks
}

func missReason(query docslice.SectionQuery) string {
	switch {
	case query.ID != "" && query.HeadingText != "":
		return fmt.Sprintf("no heading matched id %q or text %q", query.ID, query.HeadingText)
	case query.ID != "":
		return fmt.Sprintf("no heading matched id %q", query.ID)
	default:
		return fmt.Sprintf("no heading matched text %q", query.HeadingText)
	}
}
