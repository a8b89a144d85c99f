package finance

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a structured console logger with the default
// configuration used by the CLI.
func NewLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Logger()
}

// NewLoggerWithWriter creates a structured logger with a custom writer.
func NewLoggerWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// NopLogger returns a logger that discards everything. Tests and
// library consumers that do not care about persistence warnings use it.
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}
