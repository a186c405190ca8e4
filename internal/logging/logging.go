// Package logging configures the zerolog logger used for diagnostics.
// All log output goes to stderr so that fetched input on stdout stays clean.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w.
// Colors are disabled when NO_COLOR is set or w is not a terminal.
func New(w io.Writer) zerolog.Logger {
	noColor := os.Getenv("NO_COLOR") != ""
	if f, ok := w.(*os.File); ok {
		if fi, err := f.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
			noColor = true
		}
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}
	return zerolog.New(out).With().Timestamp().Logger()
}

// Default returns the standard stderr logger.
func Default() zerolog.Logger {
	return New(os.Stderr)
}
