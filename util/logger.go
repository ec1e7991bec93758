// Package util provides low-level helpers shared by all other packages.
package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// LogLevel controls output verbosity.
type LogLevel int

const (
	LogSilent  LogLevel = -1 // -q: nothing at all, not even errors
	LogQuiet   LogLevel = 0  // default: warnings and errors only
	LogNormal  LogLevel = 1  // -v: info
	LogVerbose LogLevel = 2  // -vv: verbose
	LogDebug   LogLevel = 3  // -vvv: debug with timestamps
)

// Logger writes levelled messages to stderr with optional timestamps
// and level prefixes.  Received message content never goes through the
// Logger; it is written directly to stdout by the receive loops.
type Logger struct {
	level      LogLevel
	output     io.Writer
	mu         sync.Mutex
	timestamps bool // if true, prepend HH:MM:SS.mmm timestamps
}

// NewLogger returns a Logger printing at or below the given level.
// Pass LogSilent to suppress every message including errors; startup
// failures are reported by main, outside the logger.
func NewLogger(level LogLevel) *Logger {
	return &Logger{
		level:      level,
		output:     os.Stderr,
		timestamps: level >= LogDebug, // auto-enable timestamps in debug mode
	}
}

// SetTimestamps enables or disables timestamp prefixes.
func (l *Logger) SetTimestamps(on bool) { l.timestamps = on }

// SetOutput overrides the output writer (default: os.Stderr).
func (l *Logger) SetOutput(w io.Writer) { l.output = w }

// Level returns the current log level.
func (l *Logger) Level() LogLevel { return l.level }

// Error prints unless the logger is silent.  Prefixed with [ERR].
func (l *Logger) Error(format string, args ...interface{}) {
	if l.level > LogSilent {
		l.write("ERR", format, args...)
	}
}

// Warn prints at the default level and above.  Prefixed with [WRN].
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level >= LogQuiet {
		l.write("WRN", format, args...)
	}
}

// Info prints when verbosity ≥ 1.  Prefixed with [INF].
func (l *Logger) Info(format string, args ...interface{}) {
	if l.level >= LogNormal {
		l.write("INF", format, args...)
	}
}

// Verbose prints when verbosity ≥ 2.  Prefixed with [VRB].
func (l *Logger) Verbose(format string, args ...interface{}) {
	if l.level >= LogVerbose {
		l.write("VRB", format, args...)
	}
}

// Debug prints when verbosity ≥ 3.  Prefixed with [DBG].
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level >= LogDebug {
		l.write("DBG", format, args...)
	}
}

func (l *Logger) write(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if l.timestamps {
		ts := time.Now().Format("15:04:05.000")
		fmt.Fprintf(l.output, "%s [%s] %s\n", ts, level, msg)
	} else {
		fmt.Fprintf(l.output, "[%s] %s\n", level, msg)
	}
}
