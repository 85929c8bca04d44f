// Package trafilatura implements docslice.Extractor using the
// go-trafilatura boilerplate-removal library.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docslice"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docslice.Extractor at compile time.
var _ docslice.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*docslice.ExtractResult, error) {
	if rawHTML == "" {
		return nil, docslice.Errorf(docslice.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, docslice.Errorf(docslice.EINVALID, "extracting content: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &docslice.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", docslice.Errorf(docslice.EINTERNAL, "rendering node: %v", err)
	}
	return buf.String(), nil
}
