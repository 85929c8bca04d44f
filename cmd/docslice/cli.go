package main

import (
	"context"
	"io"

	"github.com/fwojciec/docslice"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Fetcher    docslice.Fetcher
	Sitemaps   docslice.SitemapService
	Sections   docslice.SectionService
	Summarizer docslice.PageSummarizer
	Extractor  docslice.Extractor
	Converter  docslice.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Urls     UrlsCmd     `cmd:"" help:"Resolve a site's sitemap tree into page URLs"`
	Outline  OutlineCmd  `cmd:"" help:"Print a page's heading outline"`
	Section  SectionCmd  `cmd:"" help:"Extract one heading-scoped section from a page"`
	Summary  SummaryCmd  `cmd:"" help:"Summarize a page's primary content"`
	Discover DiscoverCmd `cmd:"" help:"Discover pages by following in-scope links"`
}

// UrlsCmd is the "urls" subcommand.
type UrlsCmd struct {
	URL     string   `arg:"" help:"Site base URL or direct sitemap URL"`
	Sitemap bool     `short:"s" help:"Treat URL as a sitemap document instead of a site base"`
	Include []string `short:"i" name:"include" help:"Keep only URLs containing a token (repeatable)"`
	Exclude []string `short:"x" name:"exclude" help:"Drop URLs containing a token (repeatable)"`
	Max     int      `short:"m" help:"Maximum number of URLs to return (0 = no cap)"`
}

// OutlineCmd is the "outline" subcommand.
type OutlineCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// SectionCmd is the "section" subcommand.
type SectionCmd struct {
	URL      string `arg:"" help:"Page URL"`
	ID       string `help:"Heading identifier to extract"`
	Text     string `help:"Heading text to extract (case-insensitive exact match)"`
	MaxChars int    `default:"10000" help:"Size budget for section markup"`
	Markdown bool   `help:"Render the section as Markdown instead of plain text"`
}

// SummaryCmd is the "summary" subcommand.
type SummaryCmd struct {
	URL      string `arg:"" help:"Page URL"`
	MaxChars int    `default:"2000" help:"Size budget for body text"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	URL        string   `arg:"" help:"Seed page URL"`
	Host       []string `help:"Allowed hosts (default: the seed's host)"`
	PathPrefix string   `help:"Section path prefix (default: the seed's path)"`
	MaxPages   int      `default:"25" help:"Maximum pages to visit"`
	RPS        float64  `default:"1" help:"Requests per second per domain"`
}
