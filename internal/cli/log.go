// Package cli implements the grafo command-line interface.
//
// The CLI is built using cobra and logs via charmbracelet/log.
//
// # Commands
//
//   - generate: Build a graph from a TOML or YAML configuration and write
//     it as DOT, JSON or a rendered image
//   - flush: Remove the auxiliary log file
//   - config: Print the example configuration or inspect a file
//   - cache: Manage the render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level terminal logging.
// Generation records are appended in logfmt to the auxiliary log file
// (--log-file, default grafo.log), each tagged with the invocation's run id.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// newFileLogger creates the logfmt logger behind the auxiliary log file.
// It records everything down to debug level and tags each record with runID.
func newFileLogger(w io.Writer, runID string) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           log.DebugLevel,
		Formatter:       log.LogfmtFormatter,
	})
	if runID != "" {
		l = l.With("run", runID)
	}
	return l
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Generated 125 nodes (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
