package logging

// Logger is the pluggable logging collaborator injected into scans.
// Implementations must be safe for concurrent use by multiple
// goroutines.
type Logger interface {
	// Verbose logs per-entry diagnostics.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...any)

	// Info logs scan lifecycle events.
	// Always logged regardless of verbose mode.
	Info(format string, args ...any)

	// Error logs per-entry warnings and failures.
	// Always logged regardless of verbose mode.
	Error(format string, args ...any)
}
