package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docslice"
)

// truncationMarker is appended exactly once when body text exceeds the
// size budget. Truncation is never silent.
const truncationMarker = "..."

// chromeSelector matches non-content structural elements removed from
// the working copy before text and link extraction.
const chromeSelector = "script, style, nav, footer, header"

// regionSelectors are tried in order to locate the primary content
// region; the whole body is the fallback.
var regionSelectors = []string{"main", "article", `[role="main"]`}

// Ensure PageSummarizer implements docslice.PageSummarizer.
var _ docslice.PageSummarizer = (*PageSummarizer)(nil)

// PageSummarizer reduces a fetched HTML resource to a bounded summary.
type PageSummarizer struct{}

// NewPageSummarizer creates a new PageSummarizer.
func NewPageSummarizer() *PageSummarizer {
	return &PageSummarizer{}
}

// Summarize strips page chrome, locates the primary content region,
// and returns bounded plain text, headings, and outbound links.
// A maxChars of zero or less means no size budget.
func (p *PageSummarizer) Summarize(res *docslice.Resource, maxChars int) (*docslice.PageSummary, error) {
	if res == nil {
		return nil, docslice.Errorf(docslice.EINVALID, "nil resource")
	}
	if !isHTML(res.ContentType) {
		return nil, docslice.Errorf(docslice.EUNSUPPORTED, "unsupported content type %q for %s", res.ContentType, res.URL)
	}

	// Pristine parse: title, meta description, and the heading outline
	// come from the unmodified document.
	pristine, err := parse(res.Body)
	if err != nil {
		return nil, err
	}

	summary := &docslice.PageSummary{
		Title:           pageTitle(pristine),
		MetaDescription: strings.TrimSpace(pristine.Find(`meta[name="description"]`).AttrOr("content", "")),
		Headings:        summaryHeadings(pristine),
	}

	// Working parse: chrome removal mutates this copy only, so section
	// extraction over the same resource is never affected.
	working, err := parse(res.Body)
	if err != nil {
		return nil, err
	}
	working.Find(chromeSelector).Remove()

	region := primaryRegion(working)

	summary.BodyText = strings.TrimSpace(region.Text())
	if maxChars > 0 {
		runes := []rune(summary.BodyText)
		if len(runes) > maxChars {
			summary.BodyText = string(runes[:maxChars]) + truncationMarker
			summary.Truncated = true
		}
	}

	summary.Links = regionLinks(region, res.URL)

	return summary, nil
}

// isHTML reports whether a content type can be summarized. An empty
// content type is assumed to be HTML.
func isHTML(contentType string) bool {
	if contentType == "" {
		return true
	}
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "text/html") || strings.Contains(ct, "application/xhtml")
}

// pageTitle returns the document title, falling back to the first H1.
func pageTitle(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	return title
}

// primaryRegion selects the primary content region by descending
// priority, falling back to the whole body.
func primaryRegion(doc *goquery.Document) *goquery.Selection {
	for _, sel := range regionSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			return s
		}
	}
	return doc.Find("body")
}

// summaryHeadings collects H1-H3 headings in document order, dropping
// headings with empty text.
func summaryHeadings(doc *goquery.Document) []docslice.SummaryHeading {
	var headings []docslice.SummaryHeading
	doc.Find("h1, h2, h3").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		headings = append(headings, docslice.SummaryHeading{
			Rank: headingRank(sel.Get(0)),
			Text: text,
		})
	})
	return headings
}

// regionLinks collects links from the content region in document
// order, resolved against the page's own URL. Links are not
// deduplicated; the count is capped at MaxSummaryLinks.
func regionLinks(region *goquery.Selection, pageURL string) []docslice.SummaryLink {
	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	var links []docslice.SummaryLink
	region.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, ok := sel.Attr("href")
		if !ok || href == "" || isNonHTTPLink(href) {
			return true
		}

		resolved := href
		if base != nil {
			resolved = resolveURL(base, href)
			if resolved == "" {
				return true
			}
		}

		links = append(links, docslice.SummaryLink{
			URL:  resolved,
			Text: strings.TrimSpace(sel.Text()),
		})
		return len(links) < docslice.MaxSummaryLinks
	})
	return links
}
