// Package logging provides a leveled structured logger backed by slog.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	case LevelInfo:
		return slog.LevelInfo
	default:
		return slog.LevelError + 4
	}
}

// ParseLevel parses a log level string.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Field is a structured logging attribute.
type Field struct {
	Key   string
	Value any
}

// Convenience helpers for common field types.
func String(key, value string) Field        { return Field{Key: key, Value: value} }
func Int(key string, value int) Field       { return Field{Key: key, Value: value} }
func Float(key string, value float64) Field { return Field{Key: key, Value: value} }
func Err(err error) Field                   { return Field{Key: "err", Value: err} }
func Any(key string, value any) Field       { return Field{Key: key, Value: value} }

// Logger is a leveled logger writing slog text or JSON records.
type Logger struct {
	mu     sync.Mutex
	level  *slog.LevelVar
	json   bool
	attrs  []any
	output io.Writer
	l      *slog.Logger
}

// Option configures a Logger.
type Option func(*Logger)

// WithJSON switches the output to JSON records.
func WithJSON() Option {
	return func(l *Logger) {
		l.json = true
	}
}

// WithOutput sets the initial output destination.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.output = w
	}
}

// New creates a new logger writing to stderr.
func New(level Level, opts ...Option) *Logger {
	l := &Logger{
		level:  new(slog.LevelVar),
		output: os.Stderr,
	}
	l.level.Set(level.slogLevel())

	for _, opt := range opts {
		opt(l)
	}

	l.rebuild()
	return l
}

func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: l.level}

	var h slog.Handler
	if l.json {
		h = slog.NewJSONHandler(l.output, opts)
	} else {
		h = slog.NewTextHandler(l.output, opts)
	}
	l.l = slog.New(h).With(l.attrs...)
}

// SetOutput sets the log output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
	l.rebuild()
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.level.Set(level.slogLevel())
}

// Enabled reports whether records at level are written.
func (l *Logger) Enabled(level Level) bool {
	return level.slogLevel() >= l.level.Level()
}

// With returns a logger that adds fields to every record.
func (l *Logger) With(fields ...Field) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	child := &Logger{
		level:  l.level,
		json:   l.json,
		attrs:  append(append([]any(nil), l.attrs...), toArgs(fields)...),
		output: l.output,
	}
	child.rebuild()
	return child
}

func (l *Logger) log(level Level, msg string, fields []Field) {
	l.mu.Lock()
	logger := l.l
	l.mu.Unlock()

	logger.Log(context.Background(), level.slogLevel(), msg, toArgs(fields)...)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...Field) {
	l.log(LevelDebug, msg, fields)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields)
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	return New(LevelError+1, WithOutput(io.Discard)) // higher than any level
}

func toArgs(fields []Field) []any {
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		args = append(args, slog.Any(f.Key, f.Value))
	}
	return args
}
