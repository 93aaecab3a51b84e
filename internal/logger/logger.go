package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns the process-wide logger, writing human-readable events to
// stderr so they never mix with table output on stdout. Verbose enables
// debug events; otherwise only warnings and errors are emitted.
func New(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Logger().
		Level(level)
}
