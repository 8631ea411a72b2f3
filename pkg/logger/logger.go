package logger

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// LogLevel represents different log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger provides leveled diagnostic logging and progress reporting.
// Diagnostic messages (debug/info/warn/error) go to stderr; progress and
// status messages go to stdout, so the streams can be redirected separately.
type Logger struct {
	level   LogLevel
	verbose bool

	warnTag  *color.Color
	errorTag *color.Color
}

// NewLogger creates a new logger with specified level and verbose mode
func NewLogger(level string, verbose bool) *Logger {
	l := &Logger{
		level:    parseLogLevel(level),
		verbose:  verbose,
		warnTag:  color.New(color.FgYellow),
		errorTag: color.New(color.FgRed),
	}
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		l.warnTag.DisableColor()
		l.errorTag.DisableColor()
	}
	return l
}

// Debug logs debug information (only in debug mode)
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level <= LevelDebug {
		l.log("DEBUG", fmt.Sprintf(format, args...))
	}
}

// Info logs informational messages (only in verbose mode)
func (l *Logger) Info(format string, args ...interface{}) {
	if l.verbose && l.level <= LevelInfo {
		l.log("INFO", fmt.Sprintf(format, args...))
	}
}

// Warn logs warning messages
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level <= LevelWarn {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", l.warnTag.Sprint("WARN"), fmt.Sprintf(format, args...))
	}
}

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	if l.level <= LevelError {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", l.errorTag.Sprint("ERROR"), fmt.Sprintf(format, args...))
	}
}

// ProgressAlways logs critical progress information that should always be shown
// This is for important milestones that users should see regardless of verbose mode
func (l *Logger) ProgressAlways(emoji, format string, args ...interface{}) {
	fmt.Printf("%s %s\n", emoji, fmt.Sprintf(format, args...))
}

// Progress logs detailed progress information (only in verbose mode)
// This is for step-by-step details that help with debugging and monitoring
func (l *Logger) Progress(emoji, format string, args ...interface{}) {
	if l.verbose {
		fmt.Printf("%s %s\n", emoji, fmt.Sprintf(format, args...))
	}
}

// log outputs formatted diagnostic messages to stderr
func (l *Logger) log(level, message string) {
	fmt.Fprintf(os.Stderr, "[%s] %s\n", level, message)
}

// parseLogLevel converts string level to LogLevel
func parseLogLevel(level string) LogLevel {
	switch level {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// DefaultLogger returns a default logger instance
func DefaultLogger() *Logger {
	return NewLogger("info", false)
}
