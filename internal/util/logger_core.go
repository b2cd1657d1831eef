package util

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// LoggerInterface defines the public interface for logging
type LoggerInterface interface {
	Debug(msg string, fields ...Field)
	Debugf(format string, args ...interface{})
	Info(msg string, fields ...Field)
	Infof(format string, args ...interface{})
	Warn(msg string, fields ...Field)
	Warnf(format string, args ...interface{})
	Error(msg string, fields ...Field)
	Errorf(format string, args ...interface{})
	With(fields ...Field) LoggerInterface
	SetLevel(level LogLevel)
}

// Logger provides structured logging on top of zerolog
type Logger struct {
	zl      zerolog.Logger
	outputs *outputSet
	mu      sync.RWMutex
}

// NewLogger creates a logger writing to logFile, and to stderr as well when
// debugToConsole is set.
func NewLogger(levelStr string, logFile string, debugToConsole bool) (*Logger, error) {
	outputs, err := openOutputs(logFile, debugToConsole)
	if err != nil {
		return nil, err
	}

	zl := zerolog.New(outputs.writer()).
		Level(toZerologLevel(parseLogLevel(levelStr))).
		With().Timestamp().Logger()

	return &Logger{zl: zl, outputs: outputs}, nil
}

// parseLogLevel parses a log level string
func parseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(levelStr) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func toZerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) log(level LogLevel, msg string, fields ...Field) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ev := l.zl.WithLevel(toZerologLevel(level))
	if ev == nil {
		return
	}
	for _, field := range fields {
		ev = ev.Interface(field.Key, field.Value)
	}
	ev.Msg(msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...Field) {
	l.log(LevelDebug, msg, fields...)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(LevelDebug, fmt.Sprintf(format, args...))
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(LevelWarn, fmt.Sprintf(format, args...))
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(LevelError, fmt.Sprintf(format, args...))
}

// With returns a new logger with additional fields
func (l *Logger) With(fields ...Field) LoggerInterface {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ctx := l.zl.With()
	for _, field := range fields {
		ctx = ctx.Interface(field.Key, field.Value)
	}
	return &Logger{zl: ctx.Logger(), outputs: l.outputs}
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl = l.zl.Level(toZerologLevel(level))
}

// Close releases the file output, if any.
func (l *Logger) Close() error {
	return l.outputs.Close()
}
