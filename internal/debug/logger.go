package debug

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// CategoryStack is the category under which the trace stack reports its
// push/pop activity.
const CategoryStack = "tracestack"

// Logger is the main interface for emitting debug lines.
type Logger interface {
	// Emit records one message under the given category. Implementations
	// drop the line when the category is not enabled.
	Emit(category, message string)

	// Enabled reports whether the given category is active. Callers use it
	// to skip building expensive messages.
	Enabled(category string) bool

	// Flush ensures all buffered lines are written.
	Flush() error

	// Close flushes and releases resources.
	Close() error
}

// Mode determines how lines are stored.
type Mode uint8

const (
	ModeStream Mode = iota + 1 // immediate write
	ModeRing                   // circular buffer
	ModeBoth                   // stream + ring
)

// String returns the string representation of Mode.
func (m Mode) String() string {
	switch m {
	case ModeStream:
		return "stream"
	case ModeRing:
		return "ring"
	case ModeBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ParseMode converts a string to Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "stream":
		return ModeStream, nil
	case "ring":
		return ModeRing, nil
	case "both":
		return ModeBoth, nil
	default:
		return ModeStream, fmt.Errorf("invalid debug mode: %q (expected: stream|ring|both)", s)
	}
}

// Config holds logger configuration.
type Config struct {
	Categories Categories // enabled categories; empty means logging is off
	Mode       Mode       // storage mode
	Format     Format     // output format (FormatAuto for auto-detection)
	Output     io.Writer  // for stream mode (if nil, use OutputPath)
	OutputPath string     // alternative: file path ("-" for stderr)
	RingSize   int        // for ring mode (default 4096)
}

// New creates a Logger based on Config.
func New(cfg Config) (Logger, error) {
	if len(cfg.Categories) == 0 {
		return Nop, nil
	}

	if cfg.RingSize <= 0 {
		cfg.RingSize = 4096
	}

	format := cfg.Format
	if format == FormatAuto {
		format = FormatText
		if cfg.OutputPath != "" && cfg.OutputPath != "-" {
			if strings.HasSuffix(cfg.OutputPath, ".ndjson") {
				format = FormatNDJSON
			}
		}
	}

	switch cfg.Mode {
	case 0, ModeStream:
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		return NewStreamLogger(w, cfg.Categories, format), nil

	case ModeRing:
		return NewRingLogger(cfg.RingSize, cfg.Categories), nil

	case ModeBoth:
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		stream := NewStreamLogger(w, cfg.Categories, format)
		ring := NewRingLogger(cfg.RingSize, cfg.Categories)
		return NewMultiLogger(cfg.Categories, stream, ring), nil

	default:
		return nil, fmt.Errorf("unknown debug mode: %v", cfg.Mode)
	}
}

// openOutput opens the output writer from config.
func openOutput(cfg Config) (io.Writer, error) {
	if cfg.Output != nil {
		return cfg.Output, nil
	}

	if cfg.OutputPath == "" || cfg.OutputPath == "-" {
		return os.Stderr, nil
	}

	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug output: %w", err)
	}

	return f, nil
}
