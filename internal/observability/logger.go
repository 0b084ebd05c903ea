// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package observability builds the process logger.
package observability

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LoggingConfig controls diagnostic log output.
type LoggingConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string

	// Format is the output format: "console" or "json".
	Format string
}

// NewLogger returns a zerolog logger writing to w. An unknown or empty
// level falls back to info; any format other than "json" gets the console
// writer.
func NewLogger(cfg LoggingConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if strings.ToLower(cfg.Format) != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
