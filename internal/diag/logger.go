// Package diag implements the program's diagnostic stack: a buffered
// plain-text logger (A1) and a structured NDJSON event log (A2), both
// keyed to one run's log directory.
//
// Each log line format:
//
//	[1730000000.123] [INFO] message
package diag

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"time"
)

// Logger writes timestamped log lines to a file, falling back to
// stderr once closed.
type Logger struct {
	file   *os.File
	writer *bufio.Writer
	mu     sync.Mutex
	closed bool
}

// NewLogger creates or appends to the log file at path.
func NewLogger(path string) (*Logger, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("diag: opening log file: %w", err)
	}
	return &Logger{file: file, writer: bufio.NewWriter(file)}, nil
}

// Info logs a message with INFO severity.
func (l *Logger) Info(msg string) { l.write("INFO", msg) }

// Warn logs a message with WARN severity.
func (l *Logger) Warn(msg string) { l.write("WARN", msg) }

// Error logs a message with ERROR severity.
func (l *Logger) Error(msg string) { l.write("ERROR", msg) }

func (l *Logger) write(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now().UTC()
	epochSeconds := float64(now.UnixNano()) / 1e9
	timestamp := fmt.Sprintf("%.3f", epochSeconds)
	line := fmt.Sprintf("[%s] [%s] %s\n", timestamp, level, msg)

	if l.closed {
		fmt.Fprint(os.Stderr, line)
		return
	}
	if _, err := l.writer.WriteString(line); err != nil {
		fmt.Fprintf(os.Stderr, "diag: log write failed: %v\n", err)
		return
	}
	if err := l.writer.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "diag: log flush failed: %v\n", err)
	}
}

// Close flushes and closes the log file. After Close, further writes
// fall back to stderr instead of erroring.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	if err := l.writer.Flush(); err != nil {
		return fmt.Errorf("diag: flushing log: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("diag: closing log: %w", err)
	}
	return nil
}
