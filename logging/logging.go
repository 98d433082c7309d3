// Package logging provides the capability logging interface used across the
// binding engine, plus a small leveled writer-backed implementation.
//
// The engine never keeps global logger state; every function that wants to
// report something takes a Logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger is the capability interface passed into engine functions.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Level represents the severity level of a log message.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for general informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the log level.
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

// ParseLevel parses a string into a Level.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "info", "INFO":
		return LevelInfo
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// WriterLogger writes leveled, timestamped lines to an io.Writer.
type WriterLogger struct {
	mu     sync.Mutex
	level  Level
	output io.Writer
	prefix string
}

// Config configures a WriterLogger.
type Config struct {
	// Level is the minimum log level to output.
	Level Level
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Prefix is prepended to all log messages.
	Prefix string
}

// New creates a logger with the given configuration.
func New(cfg Config) *WriterLogger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	return &WriterLogger{
		level:  cfg.Level,
		output: cfg.Output,
		prefix: cfg.Prefix,
	}
}

// SetLevel sets the minimum log level.
func (l *WriterLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Debugf logs a debug message.
func (l *WriterLogger) Debugf(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Infof logs an info message.
func (l *WriterLogger) Infof(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warnf logs a warning message.
func (l *WriterLogger) Warnf(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Errorf logs an error message.
func (l *WriterLogger) Errorf(format string, args ...any) {
	l.log(LevelError, format, args...)
}

func (l *WriterLogger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	timestamp := time.Now().Format("2006-01-02T15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		fmt.Fprintf(l.output, "%s [%s] %s: %s\n", timestamp, level, l.prefix, msg)
		return
	}
	fmt.Fprintf(l.output, "%s [%s] %s\n", timestamp, level, msg)
}

// nop discards everything.
type nop struct{}

func (nop) Debugf(string, ...any) {}
func (nop) Infof(string, ...any)  {}
func (nop) Warnf(string, ...any)  {}
func (nop) Errorf(string, ...any) {}

// Nop returns a logger that discards all messages.
func Nop() Logger { return nop{} }
