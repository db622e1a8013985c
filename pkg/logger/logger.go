// Package logger is a thin printf-style facade over zerolog.
// Components declare their own narrow Logger interface and receive this type,
// so nothing outside main imports zerolog directly.
package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger writes leveled log lines to a file or stdout.
type Logger struct {
	zl   zerolog.Logger
	file *os.File
}

// New creates a logger writing to the given file path ("" or "stdout" for
// standard output) at the given level (debug|info|warn|error).
func New(filePath, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	var (
		out  *os.File
		file *os.File
	)
	if filePath == "" || filePath == "stdout" {
		out = os.Stdout
	} else {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file %s: %w", filePath, err)
		}
		out = f
		file = f
	}

	zl := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return &Logger{zl: zl, file: file}, nil
}

func parseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("logger: unknown level %q", level)
	}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Fatal logs at error level and exits with status 1.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
	l.Close()
	os.Exit(1)
}

// Close releases the underlying log file, if any.
func (l *Logger) Close() {
	if l.file != nil {
		_ = l.file.Close()
	}
}
