// Package logging wires this module's structured logging on
// github.com/rs/zerolog, following the same context-carried-logger shape
// as the teacher corpus's pkg/logger (inngest-inngest): a logger is
// attached to a context.Context with With, retrieved with From, and a
// package-level Default covers call sites with no context to thread
// through.
package logging

import (
	"context"
	"os"

	"github.com/rs/zerolog"
)

type loggerKey struct{}

var defaultLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	Level(zerolog.InfoLevel).
	With().Timestamp().Logger()

// Configure rebuilds the package default logger from a level name
// ("debug", "info", "warn", ...) and a format ("console" or "json"),
// mirroring pkg/logger.SetLevel/SetFormat's flag-driven construction.
func Configure(level, format string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	var l zerolog.Logger
	if format == "json" {
		l = zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
	} else {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
	}
	defaultLogger = l
	return nil
}

// With attaches logger to ctx for later retrieval via From.
func With(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// From returns the logger carried by ctx, or the package default if ctx
// carries none.
func From(ctx context.Context) *zerolog.Logger {
	if v := ctx.Value(loggerKey{}); v != nil {
		l := v.(zerolog.Logger)
		return &l
	}
	return Default()
}

// Default returns the package-level default logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}
