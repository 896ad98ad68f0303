// Package slog provides logging decorators for locdata services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/locdata"
)

// Ensure LoggingFinder implements locdata.DataFinder.
var _ locdata.DataFinder = (*LoggingFinder)(nil)

// LoggingFinder wraps a DataFinder with structured logging for each
// location attempt.
type LoggingFinder struct {
	next   locdata.DataFinder
	logger *slog.Logger
}

// NewLoggingFinder creates a new LoggingFinder.
func NewLoggingFinder(next locdata.DataFinder, logger *slog.Logger) *LoggingFinder {
	return &LoggingFinder{next: next, logger: logger}
}

// Find delegates to the wrapped finder and logs the outcome.
func (f *LoggingFinder) Find(ctx context.Context, docs []string, query, name string, attempt int) (*locdata.Location, error) {
	begin := time.Now()
	loc, err := f.next.Find(ctx, docs, query, name, attempt)
	if err != nil {
		f.logger.Error("data location failed",
			"query", query,
			"attempt", attempt,
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}
	f.logger.Info("data location",
		"query", query,
		"attempt", attempt,
		"shape", string(loc.Shape),
		"proportion", loc.Proportion,
		"duration", time.Since(begin),
	)
	return loc, nil
}
