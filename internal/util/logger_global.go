package util

import (
	"sync"
)

var (
	globalLogger LoggerInterface
	loggerMu     sync.RWMutex
)

// InitLogger initializes the global logger instance with debug mode support
func InitLogger(logLevel, logFile string, debugToConsole bool) error {
	logger, err := NewLogger(logLevel, logFile, debugToConsole)
	if err != nil {
		return err
	}
	SetLogger(logger)
	return nil
}

// SetLogger replaces the global logger. A nil logger silences logging.
func SetLogger(logger LoggerInterface) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	globalLogger = logger
}

func current() LoggerInterface {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return globalLogger
}

// LogInfo convenience functions for logging
func LogInfo(msg string, fields ...Field) {
	if l := current(); l != nil {
		l.Info(msg, fields...)
	}
}

func LogInfof(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Infof(format, args...)
	}
}

func LogDebug(msg string, fields ...Field) {
	if l := current(); l != nil {
		l.Debug(msg, fields...)
	}
}

func LogDebugf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Debugf(format, args...)
	}
}

func LogWarn(msg string, fields ...Field) {
	if l := current(); l != nil {
		l.Warn(msg, fields...)
	}
}

func LogWarnf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Warnf(format, args...)
	}
}

func LogError(msg string, fields ...Field) {
	if l := current(); l != nil {
		l.Error(msg, fields...)
	}
}

func LogErrorf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Errorf(format, args...)
	}
}
