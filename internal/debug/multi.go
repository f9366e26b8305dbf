package debug

// MultiLogger fans out debug lines to multiple loggers.
type MultiLogger struct {
	loggers    []Logger
	categories Categories
}

// NewMultiLogger creates a new MultiLogger that emits to all provided loggers.
func NewMultiLogger(categories Categories, loggers ...Logger) *MultiLogger {
	return &MultiLogger{
		loggers:    loggers,
		categories: categories,
	}
}

// Emit sends the line to all underlying loggers.
func (l *MultiLogger) Emit(category, message string) {
	for _, lg := range l.loggers {
		lg.Emit(category, message)
	}
}

// Enabled reports whether the category is active.
func (l *MultiLogger) Enabled(category string) bool {
	return l.categories.Enabled(category)
}

// Flush flushes all underlying loggers.
func (l *MultiLogger) Flush() error {
	var firstErr error
	for _, lg := range l.loggers {
		if err := lg.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Close closes all underlying loggers.
func (l *MultiLogger) Close() error {
	var firstErr error
	for _, lg := range l.loggers {
		if err := lg.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
