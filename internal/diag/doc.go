// Package diag defines the warning-emission contract the trace stack and its
// tooling report through.
//
// # Purpose
//
//   - Provide the Reporter interface: the single capability producers need to
//     flag a usage-contract violation or an imbalance without coupling to a
//     concrete sink.
//   - Offer light-weight sinks: Bag (bounded collector for tests and batch
//     summaries), ConsoleReporter (stderr-style human output), DedupReporter
//     (suppression of repeated identical warnings), Nop.
//
// # Scope
//
// Package diag performs no stack inspection and owns no exit codes. Every
// warning is advisory: emitting one never stops the caller, matching the
// engine rule that diagnostics support error reporting and must not become a
// source of failures themselves.
//
// # Data model
//
// Warning is the central record. It carries the rendered message and a
// Recoverable flag: recoverable warnings describe conditions the engine
// already compensated for (missing command name, ignored unbalanced pop),
// non-recoverable ones describe conditions the embedding engine should
// surface prominently. The flag selects the console label, nothing else.
package diag
