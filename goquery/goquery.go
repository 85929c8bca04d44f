// Package goquery implements docslice.SectionService and
// docslice.PageSummarizer over the goquery HTML parser.
package goquery

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docslice"
	"golang.org/x/net/html"
)

// parse parses an HTML document. Each call returns an independent
// tree; callers that mutate one parse never affect another.
func parse(rawHTML string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docslice.Errorf(docslice.EINVALID, "parsing HTML: %v", err)
	}
	return doc, nil
}

// renderNode serializes an html.Node back to markup.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", docslice.Errorf(docslice.EINTERNAL, "rendering node: %v", err)
	}
	return buf.String(), nil
}

// headingRank returns the rank of a heading element node, or 0 if the
// node is not an h1-h6 element.
func headingRank(n *html.Node) int {
	if n.Type != html.ElementNode || len(n.Data) != 2 || n.Data[0] != 'h' {
		return 0
	}
	if n.Data[1] < '1' || n.Data[1] > '6' {
		return 0
	}
	return int(n.Data[1] - '0')
}

// headingID resolves a heading's identifier: the id attribute on the
// element itself, else the id of a nested anchor, else empty.
func headingID(sel *goquery.Selection) string {
	if id, ok := sel.Attr("id"); ok && id != "" {
		return id
	}
	if id, ok := sel.Find("a[id]").First().Attr("id"); ok && id != "" {
		return id
	}
	return ""
}

// nodeText returns the trimmed text content of a node subtree.
func nodeText(n *html.Node) string {
	return strings.TrimSpace(goquery.NewDocumentFromNode(n).Text())
}

// resolveURL resolves a relative href against a base URL.
// Returns empty string if the href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
