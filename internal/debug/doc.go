// Package debug provides the category-gated debug tracing capability the
// rest of the toolkit reports through.
//
// Producers emit one-line messages tagged with a category name; whether a
// line goes anywhere is decided by the set of enabled categories, so a
// disabled category costs one map lookup and no formatting.
//
// # Usage
//
// Enable categories via the CLI:
//
//	sile-trace replay --debug=tracestack session.ndjson
//
// Library code guards expensive message construction:
//
//	if logger.Enabled(debug.CategoryStack) {
//		logger.Emit(debug.CategoryStack, renderLine())
//	}
//
// # Architecture
//
// The package provides several logger implementations:
//
//   - Nop: zero-overhead logger when nothing is enabled
//   - StreamLogger: immediate write to output (file/stderr)
//   - RingLogger: circular buffer of recent lines for post-mortem display
//   - MultiLogger: fan-out to several loggers
//
// New selects and combines them from a Config, auto-detecting the output
// format from the file extension (.ndjson switches to newline-delimited
// JSON, anything else stays human-readable text).
package debug
