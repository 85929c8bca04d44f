package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docslice/goquery"
	dochttp "github.com/fwojciec/docslice/http"
	"github.com/fwojciec/docslice/htmltomarkdown"
	docslog "github.com/fwojciec/docslice/slog"
	"github.com/fwojciec/docslice/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docslice"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docslice --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire core services into dependencies.
	deps.Fetcher = docslog.NewLoggingFetcher(dochttp.NewFetcher(), logger)
	deps.Sitemaps = docslog.NewLoggingSitemapService(dochttp.NewSitemapService(nil), logger)
	deps.Sections = docslog.NewLoggingSectionService(goquery.NewSectionService(), logger)
	deps.Summarizer = goquery.NewPageSummarizer()
	deps.Extractor = trafilatura.NewExtractor()
	deps.Converter = htmltomarkdown.NewConverter()

	return kongCtx.Run(deps)
}
