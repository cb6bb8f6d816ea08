// Package cli implements the jointaug command-line interface.
//
// The CLI inspects and exercises augmentation pipelines: it validates
// pipeline files, samples RandomResizedCrop rectangles and runs a demo that
// pushes a synthetic image and its mask through a pipeline, checking that both
// receive the same geometry. It is built on cobra and logs through
// charmbracelet/log.
//
// # Commands
//
//   - validate: parse and build a pipeline file
//   - params:   print (and optionally plot) sampled crop rectangles
//   - demo:     run a pipeline over a synthetic image/mask pair
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports the value produced by every pipeline stage. Loggers travel through
// context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the given level, with
// "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the elapsed time of an operation when done is called.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the attached logger or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}
