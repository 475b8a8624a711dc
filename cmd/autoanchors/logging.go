package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns the diagnostics logger writing to w.
// Verbose enables debug output; quiet keeps errors only.
func newLogger(w io.Writer, quiet, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case quiet:
		level = zerolog.ErrorLevel
	case verbose:
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
