package debug

import (
	"io"
	"sync"
)

// RingLogger keeps the last N lines in memory (circular buffer).
type RingLogger struct {
	mu         sync.RWMutex
	lines      []Line
	capacity   int
	head       int  // next write position
	full       bool // has wrapped around
	categories Categories
}

// NewRingLogger creates a new RingLogger with specified capacity.
func NewRingLogger(capacity int, categories Categories) *RingLogger {
	if capacity <= 0 {
		capacity = 4096
	}

	return &RingLogger{
		lines:      make([]Line, capacity),
		capacity:   capacity,
		categories: categories,
	}
}

// Emit adds a line to the ring buffer.
func (l *RingLogger) Emit(category, message string) {
	if !l.categories.Enabled(category) {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines[l.head] = Line{Seq: NextSeq(), Category: category, Message: message}
	l.head = (l.head + 1) % l.capacity

	if l.head == 0 {
		l.full = true
	}
}

// Snapshot returns a copy of all stored lines in chronological order.
func (l *RingLogger) Snapshot() []Line {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if !l.full {
		// Not wrapped yet - return [0:head]
		result := make([]Line, l.head)
		copy(result, l.lines[:l.head])
		return result
	}

	// Wrapped - return [head:capacity] + [0:head]
	result := make([]Line, l.capacity)
	copy(result, l.lines[l.head:])
	copy(result[l.capacity-l.head:], l.lines[:l.head])
	return result
}

// Dump writes all stored lines to the provided writer in the specified format.
func (l *RingLogger) Dump(w io.Writer, format Format) error {
	for _, line := range l.Snapshot() {
		if _, err := w.Write(FormatLine(line, format)); err != nil {
			return err
		}
	}
	return nil
}

// Enabled reports whether the category is active.
func (l *RingLogger) Enabled(category string) bool {
	return l.categories.Enabled(category)
}

// Flush is a no-op for RingLogger since everything is in memory.
func (l *RingLogger) Flush() error {
	return nil
}

// Close is a no-op for RingLogger.
func (l *RingLogger) Close() error {
	return nil
}
