package sessionlog

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadFile loads a session log, choosing the codec by extension.
func ReadFile(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session log: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	switch filepath.Ext(path) {
	case ".ndjson":
		return ReadNDJSON(f)
	case ".mp":
		return ReadBinary(f)
	default:
		return nil, fmt.Errorf("unsupported session log format: %q (expected: .ndjson|.mp)", filepath.Ext(path))
	}
}

// WriteFile stores a session log, choosing the codec by extension.
func WriteFile(path string, events []Event) error {
	var write func(f *os.File) error
	switch filepath.Ext(path) {
	case ".ndjson":
		write = func(f *os.File) error { return WriteNDJSON(f, events) }
	case ".mp":
		write = func(f *os.File) error { return WriteBinary(f, events) }
	default:
		return fmt.Errorf("unsupported session log format: %q (expected: .ndjson|.mp)", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create session log: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
