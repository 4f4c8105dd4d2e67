// Package logging builds the zerolog loggers used across linutil.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nnyyxxxx/linutil/internal/config"
)

// Console returns a human-readable logger for CLI subcommands.
func Console(cfg config.LoggingConfig, out io.Writer) (zerolog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger(), nil
}

// File returns a JSON logger appending to cfg.File, tagged with a session id.
// The TUI owns the terminal, so with no file configured the logger discards
// everything. The returned closer must be called on exit.
func File(cfg config.LoggingConfig) (zerolog.Logger, io.Closer, error) {
	if cfg.File == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("open log file: %w", err)
	}
	logger := zerolog.New(f).Level(level).With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
	return logger, f, nil
}

func parseLevel(value string) (zerolog.Level, error) {
	if value == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(value)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level: %w", err)
	}
	return level, nil
}
