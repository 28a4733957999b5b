// Package logging provides the Logger interface scans log through and
// its concrete implementations.
//
// Available implementations:
//   - ConsoleLogger: writes formatted messages to a writer, thread-safe
//   - NullLogger: discards all messages (useful for testing)
package logging

import (
	"fmt"
	"io"
	"sync"
)

// ConsoleLogger writes log messages to a writer, typically stderr.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	out     io.Writer
	verbose bool
	mu      sync.Mutex
}

// NewConsoleLogger creates a ConsoleLogger writing to out.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(out io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		out:     out,
		verbose: verbose,
	}
}

// Verbose logs per-entry diagnostics if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...any) {
	if !l.verbose {
		return
	}

	l.write("[debug] "+format, args...)
}

// Info logs scan lifecycle events.
func (l *ConsoleLogger) Info(format string, args ...any) {
	l.write(format, args...)
}

// Error logs warnings and failures.
func (l *ConsoleLogger) Error(format string, args ...any) {
	l.write("[error] "+format, args...)
}

func (l *ConsoleLogger) write(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.out, format+"\n", args...)
}
