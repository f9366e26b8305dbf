package debug

// nopLogger is a no-op implementation for zero overhead when debugging is
// disabled.
type nopLogger struct{}

// Emit does nothing.
func (nopLogger) Emit(string, string) {}

// Enabled always returns false.
func (nopLogger) Enabled(string) bool { return false }

// Flush does nothing.
func (nopLogger) Flush() error { return nil }

// Close does nothing.
func (nopLogger) Close() error { return nil }

// Nop is the package-level singleton no-op logger.
var Nop Logger = nopLogger{}
