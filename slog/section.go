package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docslice"
)

// Ensure LoggingSectionService implements docslice.SectionService.
var _ docslice.SectionService = (*LoggingSectionService)(nil)

// LoggingSectionService wraps a SectionService with debug logging.
type LoggingSectionService struct {
	next   docslice.SectionService
	logger *slog.Logger
}

// NewLoggingSectionService creates a new LoggingSectionService.
func NewLoggingSectionService(next docslice.SectionService, logger *slog.Logger) *LoggingSectionService {
	return &LoggingSectionService{next: next, logger: logger}
}

// Outline delegates to the wrapped service and logs the operation.
func (s *LoggingSectionService) Outline(html string) (headings []docslice.HeadingNode, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("outline",
			"headings", len(headings),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Outline(html)
}

// ExtractSection delegates to the wrapped service and logs the operation.
func (s *LoggingSectionService) ExtractSection(html string, query docslice.SectionQuery, maxChars int) (result *docslice.SectionResult, err error) {
	defer func(begin time.Time) {
		found := false
		truncated := false
		if result != nil {
			found = result.Found
			truncated = result.Truncated
		}
		s.logger.Debug("extract section",
			"id", query.ID,
			"headingText", query.HeadingText,
			"maxChars", maxChars,
			"found", found,
			"truncated", truncated,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExtractSection(html, query, maxChars)
}
