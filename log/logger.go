package log

import (
	"fmt"
	"io"
	"strings"
)

// Console color directives.
const (
	ColorBlue   = "\033[34m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorCyan   = "\033[36m"
	ColorReset  = "\033[0m"
)

// Logger filters and prints messages to a destination. Info, warn, and debug
// levels are off until activated; errors always print, a failure is never
// silently swallowed.
type Logger struct {
	output io.Writer
	info   bool
	warn   bool
	debug  bool
}

// New returns an instance of Logger writing to output.
func New(output io.Writer) *Logger {
	return &Logger{output: output}
}

// SetInfo activates/deactivates info level.
func (l *Logger) SetInfo(value bool) {
	l.info = value
}

// SetWarn activates/deactivates warn level.
func (l *Logger) SetWarn(value bool) {
	l.warn = value
}

// SetDebug activates/deactivates debug level.
func (l *Logger) SetDebug(value bool) {
	l.debug = value
}

// Logf writes a formatted message to the output regardless of level.
func (l *Logger) Logf(format string, a ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format = format + "\n"
	}
	fmt.Fprintf(l.output, format, a...)
}

func (l *Logger) logWithColor(color, format string, a ...interface{}) {
	l.Logf(color+format+ColorReset, a...)
}

// Infof writes the formatted message if info level is activated.
func (l *Logger) Infof(format string, a ...interface{}) {
	if l.info {
		l.logWithColor(ColorBlue, format, a...)
	}
}

// Warnf writes the formatted message if warn level is activated.
func (l *Logger) Warnf(format string, a ...interface{}) {
	if l.warn {
		l.logWithColor(ColorYellow, format, a...)
	}
}

// Errorf writes the formatted message unconditionally.
func (l *Logger) Errorf(format string, a ...interface{}) {
	l.logWithColor(ColorRed, format, a...)
}

// Error writes the error unconditionally.
func (l *Logger) Error(err error) {
	l.logWithColor(ColorRed, "%s", err.Error())
}

// Debugf writes the formatted message if debug level is activated.
func (l *Logger) Debugf(format string, a ...interface{}) {
	if l.debug {
		l.logWithColor(ColorCyan, format, a...)
	}
}
