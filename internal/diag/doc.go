// Package diag defines the diagnostic model shared by the tokenizer pipeline.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced by
//     the lexer, the project loader and the driver.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// Package diag does not perform formatting beyond the short single-line form
// used by tests and quiet output. Pretty and JSON rendering live in
// internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - File and Primary – the file and the line/column span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// Notes should be used sparingly: each note must add new context (e.g. “string
// starts here”) rather than repeating the diagnostic message.
//
// # Emitting diagnostics
//
// Producers use a diag.Reporter. ReportError/ReportWarning return a
// ReportBuilder that can chain WithNote before Emit. diag.BagReporter
// aggregates diagnostics into a Bag, which supports sorting and deduplication.
package diag
