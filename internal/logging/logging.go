// Package logging bootstraps structured logging for the promptline demo
// CLI. The library itself never logs unless a caller attaches a logger; this
// package builds the logger the CLI attaches.
package logging

import (
	"io"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// NewLogger builds the root logger writing human-readable console output to
// out. Every event carries a run_id so interleaved output from repeated
// invocations can be told apart. An unparseable level falls back to info.
func NewLogger(level string, out io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(console).
		Level(lvl).
		With().
		Timestamp().
		Str("run_id", NewRunID()).
		Logger()
}

// NewRunID returns a lexicographically sortable unique id for one CLI
// invocation.
func NewRunID() string {
	return ulid.Make().String()
}

// ComponentLogger returns a child logger tagged with a component field.
func ComponentLogger(log zerolog.Logger, component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
