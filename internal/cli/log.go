// Package cli implements the kanvax command-line interface.
//
// Commands read a canvas document (a JSON list of images and frames, or "-"
// for stdin), run one operation from the engine packages, and write the
// resulting document next to the input or to stdout. The CLI is built with
// cobra; status output uses lipgloss and logging goes through
// charmbracelet/log.
//
// # Commands
//
//   - layout, align, distribute, place: batch operations via pkg/pipeline
//   - fit, zoom: viewport computations
//   - snap, resize, clip: interaction geometry for a single element
//   - inspect, preview, view: look at a document
//   - serve: the HTTP API of internal/server
//   - config, cache: settings and the preview cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to commands that need one.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger. Timestamps look like "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one step of a command.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, rounded to the millisecond, and any
// extra key/value pairs.
func (p *progress) done(msg string, keyvals ...any) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	p.logger.Info(msg, append([]any{"elapsed", elapsed}, keyvals...)...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// withOp scopes the context logger to one engine operation, so every line
// logged while it runs carries op=<name>.
func withOp(ctx context.Context, op string) context.Context {
	return withLogger(ctx, loggerFromContext(ctx).With("op", op))
}

// loggerFromContext returns the logger set by the root command, or
// log.Default() outside a command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
