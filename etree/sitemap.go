// Package etree decodes sitemap XML documents into the tagged
// docslice.Sitemap variant using the beevik/etree parser.
package etree

import (
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docslice"
)

// Decode reads one sitemap document and classifies it as an index, a
// URL set, or empty. Malformed XML returns an EINVALID error; a valid
// document with an unrecognized root is SitemapEmpty, not an error.
func Decode(r io.Reader) (*docslice.Sitemap, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, docslice.Errorf(docslice.EINVALID, "parsing sitemap XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return &docslice.Sitemap{Kind: docslice.SitemapEmpty}, nil
	}

	switch root.Tag {
	case "sitemapindex":
		return &docslice.Sitemap{
			Kind:     docslice.SitemapIndex,
			Children: childLocs(root),
		}, nil
	case "urlset":
		return &docslice.Sitemap{
			Kind:    docslice.SitemapURLSet,
			Entries: urlSetEntries(root),
		}, nil
	default:
		return &docslice.Sitemap{Kind: docslice.SitemapEmpty}, nil
	}
}

// childLocs extracts child sitemap URLs from a <sitemapindex> element.
func childLocs(root *etree.Element) []string {
	var children []string
	for _, sm := range root.SelectElements("sitemap") {
		loc := sm.SelectElement("loc")
		if loc == nil {
			continue
		}
		u := strings.TrimSpace(loc.Text())
		if u != "" {
			children = append(children, u)
		}
	}
	return children
}

// urlSetEntries extracts page entries from a <urlset> element.
func urlSetEntries(root *etree.Element) []docslice.SitemapEntry {
	var entries []docslice.SitemapEntry
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		u := strings.TrimSpace(loc.Text())
		if u == "" {
			continue
		}

		entry := docslice.SitemapEntry{Loc: u}
		if el := urlEl.SelectElement("lastmod"); el != nil {
			entry.LastMod = strings.TrimSpace(el.Text())
		}
		if el := urlEl.SelectElement("changefreq"); el != nil {
			entry.ChangeFreq = strings.TrimSpace(el.Text())
		}
		if el := urlEl.SelectElement("priority"); el != nil {
			if p, err := strconv.ParseFloat(strings.TrimSpace(el.Text()), 64); err == nil {
				entry.Priority = &p
			}
		}
		entries = append(entries, entry)
	}
	return entries
}
