package log

import (
	"io"
	"os"

	"github.com/srptools/srpboot/types"
)

var defaultLogger *Logger

// Make sure default logger instantiated by default.
func init() {
	defaultLogger = New(os.Stdout)
}

// InitDefault creates the default logger for package-level logging access.
func InitDefault(output io.Writer, config *types.Config) {
	defaultLogger = New(output)

	if config == nil {
		return
	}

	if config.RunConfig.ShowDebug {
		defaultLogger.SetDebug(true)
		defaultLogger.SetWarn(true)
		defaultLogger.SetInfo(true)
	}

	if config.RunConfig.ShowWarnings {
		defaultLogger.SetWarn(true)
	}

	if config.RunConfig.Verbose {
		defaultLogger.SetInfo(true)
	}
}

// Default returns the package default logger so it can be threaded into
// components that take an explicit logging handle.
func Default() *Logger {
	return defaultLogger
}

// Info logs an info-level message using the default logger.
func Info(format string, a ...interface{}) {
	defaultLogger.Infof(format, a...)
}

// Warn logs a warning-level message using the default logger.
func Warn(format string, a ...interface{}) {
	defaultLogger.Warnf(format, a...)
}

// Errorf logs an error-level formatted message using the default logger.
func Errorf(format string, a ...interface{}) {
	defaultLogger.Errorf(format, a...)
}

// Error logs an error using the default logger.
func Error(err error) {
	defaultLogger.Error(err)
}

// Debug logs a debug-level message using the default logger.
func Debug(format string, a ...interface{}) {
	defaultLogger.Debugf(format, a...)
}

// Fatal logs an error-level message using the default logger then exits.
func Fatal(format string, a ...interface{}) {
	defaultLogger.Errorf(format, a...)
	os.Exit(1)
}
