// Package logging provides a zerolog wrapper with opinionated defaults for
// the order-ledger CLI. Each run gets its own logger carrying a run_id so
// interleaved invocations remain distinguishable in shared log streams.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options configures the logger.
type Options struct {
	// Verbose lowers the level from info to debug.
	Verbose bool

	// Writer receives log output; defaults to stderr.
	Writer io.Writer

	// Job labels all events with the configured job name.
	Job string
}

// New builds a run-scoped logger. Output is a console writer on the
// configured writer; every event carries a timestamp, the job name, and a
// freshly generated run_id.
func New(opt Options) zerolog.Logger {
	w := opt.Writer
	if w == nil {
		w = os.Stderr
	}

	lvl := zerolog.InfoLevel
	if opt.Verbose {
		lvl = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	ctx := zerolog.New(out).Level(lvl).With().
		Timestamp().
		Str("run_id", uuid.NewString())
	if opt.Job != "" {
		ctx = ctx.Str("job", opt.Job)
	}
	return ctx.Logger()
}
