// Package logger builds the zerolog root logger for the service.
//
// The logger emits JSON in production and a coloured console format in
// development. Components receive child loggers tagged with their name,
// so every line can be traced back to the emitting subsystem.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "dating-api"

// New constructs the root logger. env selects the output format: anything
// other than "production" gets the human-friendly console writer.
func New(level, env string) zerolog.Logger {
	return NewWithOutput(level, env, os.Stdout)
}

// NewWithOutput is New with an explicit destination, for tests that want to
// capture log lines.
func NewWithOutput(level, env string, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if env != "production" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}

// Component returns a child logger tagged with the given subsystem name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
