// Package logging builds the zap logger shared by every pomodoro component.
//
// Logs go to a file when one is configured (the TUI owns the terminal, so
// writing to stderr would corrupt the screen) and to stderr otherwise.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log levels accepted in configuration.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// ValidLevels returns the accepted level strings.
func ValidLevels() []string {
	return []string{DebugLevel, InfoLevel, WarnLevel, ErrorLevel}
}

// Options controls logger construction.
type Options struct {
	// Level is one of debug, info, warn, error. Unknown values mean info.
	Level string
	// File is the log file path. Empty means stderr.
	File string
}

// Logger owns the zap logger and the file it writes to, if any.
type Logger struct {
	*zap.Logger
	file *os.File
}

// toZapLevel converts a textual level to zapcore.Level.
func toZapLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// newConsoleCore builds a console-encoded core writing to w.
func newConsoleCore(w io.Writer, level zapcore.Level) zapcore.Core {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	encoder := zapcore.NewConsoleEncoder(cfg)
	return zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), zap.NewAtomicLevelAt(level))
}

// New creates a Logger from opts. If the log file cannot be opened, the
// logger falls back to stderr and the open error is returned alongside it.
func New(opts Options) (*Logger, error) {
	level := toZapLevel(opts.Level)

	if opts.File == "" {
		return &Logger{Logger: zap.New(newConsoleCore(os.Stderr, level))}, nil
	}

	f, err := openLogFile(opts.File)
	if err != nil {
		l := &Logger{Logger: zap.New(newConsoleCore(os.Stderr, level))}
		return l, err
	}

	return &Logger{
		Logger: zap.New(newConsoleCore(f, level)),
		file:   f,
	}, nil
}

// NewWriter creates a Logger writing to w at the given level.
func NewWriter(w io.Writer, level string) *Logger {
	return &Logger{Logger: zap.New(newConsoleCore(w, toZapLevel(level)))}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// Close flushes buffered entries and closes the log file.
func (l *Logger) Close() error {
	_ = l.Logger.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
