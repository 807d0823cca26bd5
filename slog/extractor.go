package slog

import (
	"log/slog"
	"time"

	"github.com/mtoscano/cinelist"
)

// Ensure LoggingExtractor implements cinelist.ListExtractor.
var _ cinelist.ListExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ListExtractor with extraction logging. Skipped
// items are absorbed by the pipeline, so the count is surfaced here.
type LoggingExtractor struct {
	next   cinelist.ListExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next cinelist.ListExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the counters.
func (e *LoggingExtractor) Extract(html string) (*cinelist.Extraction, error) {
	begin := time.Now()
	ext, err := e.next.Extract(html)
	if err != nil {
		e.logger.Error("extraction failed",
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	e.logger.Info("extraction",
		"items", ext.ItemsFound,
		"records", len(ext.Records),
		"skipped", ext.Skipped,
		"duration", time.Since(begin),
	)
	return ext, nil
}
