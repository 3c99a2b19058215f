// Package cli implements the stackcheck command-line interface.
//
// The commands grade candidate stack partitions against arrival files,
// produce reference solutions and test inputs, draw partitions and serve
// the checker over HTTP. The CLI is built using cobra and logs through
// charmbracelet/log.
//
// # Commands
//
//   - check: grade a candidate file against an arrival file
//   - solve: print optimal partitions for arrival lines
//   - generate: write random arrival lines
//   - render: draw a partition as DOT or SVG
//   - serve: run the HTTP API
//   - cache: inspect or clear the solution cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with short timestamps such as "14:32:01.45".
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

// done logs msg with the elapsed time and any extra key/value pairs, e.g.
// "Checked 40 cases elapsed=12ms accepted=38".
func (p *progress) done(msg string, keyvals ...any) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	p.logger.Info(msg, append([]any{"elapsed", elapsed}, keyvals...)...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger stores l in ctx, prefixed with the name of the running
// command when one is given.
func withLogger(ctx context.Context, l *log.Logger, command ...string) context.Context {
	if len(command) > 0 && command[0] != "" {
		l = l.WithPrefix(command[0])
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
