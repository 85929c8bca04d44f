// Package htmltomarkdown implements docslice.Converter using the
// html-to-markdown library.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/docslice"
)

// Ensure Converter implements docslice.Converter at compile time.
var _ docslice.Converter = (*Converter)(nil)

// Converter renders extracted content HTML as CommonMark with table
// support. Output is trimmed and inter-block spacing is normalized so
// section fragments concatenate cleanly.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docslice.Errorf(docslice.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", docslice.Errorf(docslice.EINTERNAL, "converting to markdown: %v", err)
	}

	return normalize(result), nil
}

// normalize trims the output and collapses runs of three or more
// newlines to a single blank line.
func normalize(markdown string) string {
	markdown = strings.TrimSpace(markdown)
	for strings.Contains(markdown, "\n\n\n") {
		markdown = strings.ReplaceAll(markdown, "\n\n\n", "\n\n")
	}
	return markdown
}
