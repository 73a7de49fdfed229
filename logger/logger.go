// Package logger configures structured logging for programs built on
// amp-container. The library itself never logs; this package is for
// drivers and demos.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options is used to configure logging.
type Options struct {
	JSON     bool
	MinLevel slog.Level
	Output   io.Writer
}

// Configure builds a *slog.Logger from opts, installs it as the process
// default, and returns it. Output defaults to stdout.
func Configure(opts Options) *slog.Logger {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	var handler slog.Handler

	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	} else {
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{
			Level: opts.MinLevel,
		})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// FromEnv derives Options from the environment:
//   - LOG_LEVEL: debug, info (default), warn, or error
//   - LOG_JSON: any non-empty value other than "0" or "false" enables JSON output
func FromEnv() Options {
	opts := Options{MinLevel: slog.LevelInfo}

	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		opts.MinLevel = slog.LevelDebug
	case "warn":
		opts.MinLevel = slog.LevelWarn
	case "error":
		opts.MinLevel = slog.LevelError
	}

	switch strings.ToLower(os.Getenv("LOG_JSON")) {
	case "", "0", "false":
	default:
		opts.JSON = true
	}

	return opts
}
