// Package log wraps logrus behind package level helpers. Every entry carries
// a function field naming its caller so driver and agent logs can be traced
// back without grepping for messages.
package log

import (
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// Init configures the log destination and level. An empty file or "stdout"
// keeps logging on stdout. Unknown levels fall back to info.
func Init(logFile string, logLevel string) {
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	switch logFile {
	case "", "stdout":
		logger.SetOutput(os.Stdout)
	default:
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			logger.SetOutput(os.Stdout)
			logger.Warnf("could not open log file %v, logging to stdout", err)
		} else {
			logger.SetOutput(f)
		}
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

func withCaller() *logrus.Entry {
	return logger.WithField("function", caller(3))
}

// caller returns the short name of the function skip frames up the stack
func caller(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	name := runtime.FuncForPC(pc).Name()
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Debug logs at debug level
func Debug(args ...any) {
	withCaller().Debug(args...)
}

// Debugf logs a formatted message at debug level
func Debugf(format string, args ...any) {
	withCaller().Debugf(format, args...)
}

// Info logs at info level
func Info(args ...any) {
	withCaller().Info(args...)
}

// Infof logs a formatted message at info level
func Infof(format string, args ...any) {
	withCaller().Infof(format, args...)
}

// Warn logs at warning level
func Warn(args ...any) {
	withCaller().Warn(args...)
}

// Warnf logs a formatted message at warning level
func Warnf(format string, args ...any) {
	withCaller().Warnf(format, args...)
}

// Error logs at error level
func Error(args ...any) {
	withCaller().Error(args...)
}

// Errorf logs a formatted message at error level
func Errorf(format string, args ...any) {
	withCaller().Errorf(format, args...)
}

// Fatal logs at fatal level, then exits
func Fatal(args ...any) {
	withCaller().Fatal(args...)
}

// Fatalf logs a formatted message at fatal level, then exits
func Fatalf(format string, args ...any) {
	withCaller().Fatalf(format, args...)
}
