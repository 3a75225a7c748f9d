// Package logger provides a simple logging interface for wslgit components.
// It allows packages to log debug, info, warn, and error messages without
// being coupled to a specific logging implementation.
//
// git clients read wslgit's stderr, so nothing is logged unless WSLGIT_DEBUG
// is set. With a log file configured, messages go there instead.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// DebugEnv is the environment variable that enables debug logging.
const DebugEnv = "WSLGIT_DEBUG"

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// envLogger implements Logger and logs to stdout/stderr based on environment.
// Debug messages are only printed when WSLGIT_DEBUG is set.
type envLogger struct {
	prefix string
}

// NewEnvLogger creates a logger that respects the WSLGIT_DEBUG environment variable.
// The prefix is prepended to all log messages (e.g., "[translate]" or "[exec]").
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if os.Getenv(DebugEnv) != "" {
		log.Printf(l.prefix+" "+format, args...)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	log.Printf(l.prefix+" "+format, args...)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	log.Printf(l.prefix+" WARN: "+format, args...)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	log.Printf(l.prefix+" ERROR: "+format, args...)
}

// fileLogger appends every message to a log file. Lines carry a timestamp
// and the process id so concurrent git calls from an editor can be told apart.
type fileLogger struct {
	mu  sync.Mutex
	out *log.Logger
}

// NewFileLogger opens path for appending and returns a logger writing to it.
// The caller must Close the returned closer when done.
func NewFileLogger(path, prefix string) (Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, nil, err
	}
	l := NewWriterLogger(f, prefix)
	return l, f, nil
}

// NewWriterLogger returns a logger that writes all levels to w.
func NewWriterLogger(w io.Writer, prefix string) Logger {
	if prefix != "" {
		prefix += " "
	}
	return &fileLogger{
		out: log.New(w, fmt.Sprintf("[%d] %s", os.Getpid(), prefix), log.LstdFlags|log.Lmsgprefix),
	}
}

func (l *fileLogger) printf(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Printf(level+format, args...)
}

func (l *fileLogger) Debug(format string, args ...interface{}) { l.printf("DEBUG: ", format, args...) }
func (l *fileLogger) Info(format string, args ...interface{})  { l.printf("", format, args...) }
func (l *fileLogger) Warn(format string, args ...interface{})  { l.printf("WARN: ", format, args...) }
func (l *fileLogger) Error(format string, args ...interface{}) { l.printf("ERROR: ", format, args...) }

// noopLogger implements Logger but discards all messages.
// Useful for testing or when logging is not desired.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for testing.
// Exported for use in test assertions.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
// Useful for testing that code logs expected messages.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "debug", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "info", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "warn", Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: "error", Message: fmt.Sprintf(format, args...)})
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.Messages = l.Messages[:0]
}
