package debug

import (
	"io"
	"os"
	"sync"
)

// StreamLogger writes lines immediately to an io.Writer.
type StreamLogger struct {
	mu         sync.Mutex
	w          io.Writer
	categories Categories
	format     Format
}

// NewStreamLogger creates a new StreamLogger.
func NewStreamLogger(w io.Writer, categories Categories, format Format) *StreamLogger {
	return &StreamLogger{
		w:          w,
		categories: categories,
		format:     format,
	}
}

// Emit writes a line to the output.
func (l *StreamLogger) Emit(category, message string) {
	if !l.categories.Enabled(category) {
		return
	}

	data := FormatLine(Line{Seq: NextSeq(), Category: category, Message: message}, l.format)

	l.mu.Lock()
	defer l.mu.Unlock()

	// Best-effort write - debug output must never fail the host engine
	if _, err := l.w.Write(data); err != nil {
		_ = err
	}
}

// Enabled reports whether the category is active.
func (l *StreamLogger) Enabled(category string) bool {
	return l.categories.Enabled(category)
}

// Flush ensures all buffered data is written.
// For StreamLogger this is a no-op since we write immediately.
func (l *StreamLogger) Flush() error {
	if flusher, ok := l.w.(interface{ Flush() error }); ok {
		return flusher.Flush()
	}
	return nil
}

// Close flushes and closes the writer if it implements io.Closer.
// The process streams are left open.
func (l *StreamLogger) Close() error {
	if err := l.Flush(); err != nil {
		return err
	}
	if l.w == os.Stderr || l.w == os.Stdout {
		return nil
	}
	if closer, ok := l.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
