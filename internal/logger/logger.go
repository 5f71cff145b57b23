// Package logger builds the zerolog logger used by the CLI.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging settings.
type Config struct {
	// Verbose enables debug level.
	Verbose bool

	// File, when set, also writes JSON logs to this path with rotation.
	File       string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
}

// GetMaxSizeMB returns the max size in MB, defaulting to 10 if not set.
func (c Config) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 10
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (c Config) GetMaxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (c Config) GetMaxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

// New returns a logger writing human readable lines to console and, when
// cfg.File is set, JSON lines to a rotating file. The returned func closes
// the file and is safe to call when no file is open.
func New(console io.Writer, cfg Config) (zerolog.Logger, func() error) {
	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}

	var out io.Writer = zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}

	closeFn := func() error { return nil }
	if cfg.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.GetMaxSizeMB(),
			MaxAge:     cfg.GetMaxAgeDays(),
			MaxBackups: cfg.GetMaxBackups(),
			Compress:   true,
		}
		out = zerolog.MultiLevelWriter(out, fileWriter)
		closeFn = fileWriter.Close
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), closeFn
}
