// Package tracestack tracks where a document-processing engine currently is
// inside its source documents.
//
// The engine's own call stack does not map 1:1 to document structure: a
// single command invocation may expand into nested content nodes and text
// runs across several files. The engine therefore maintains an explicit
// stack of frames, one per command invocation, content node, or text run,
// and asks this package to render "where are we" strings for its error and
// warning messages.
//
// # Protocol
//
// Producers push a frame when they enter a document location and pop it when
// they leave:
//
//	id := stack.PushCommand("chapter", content, options)
//	defer stack.Pop(id)
//
// Pop verifies the opaque token it is given against the top frame. The
// engine's control flow can legitimately skip a pop on an error path;
// checking the token turns the resulting imbalance into one immediate
// warning instead of silent corruption. A mismatched pop is ignored, so
// later pops can resynchronize.
//
// # Queries
//
// LocationInfo returns a one-line best-effort location: the top frame,
// enriched with the nearest ancestor that carries a line number and with the
// most recently popped frame when that plausibly refers to the same file.
// LocationTrace returns the full stack, one frame per line, nearest first.
// Both are read-only and never fail; with no information at all they fall
// back to the environment's current file or the "<nowhere>" placeholder.
//
// # Ownership
//
// A stack has exactly one owner at a time: pushes, pops and queries all
// happen on the engine's own call sequence, so there is no locking. An
// embedder running several logical engines runs one Stack per engine.
package tracestack
