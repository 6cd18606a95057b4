// Package diag defines the diagnostic model shared by the lexer and parser.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity - Info, Warning or Error (severity.go).
//   - Code - compact numeric identifier with a stable string form (LEX1001,
//     SYN2012, ...), see codes.go.
//   - Message - short human oriented text.
//   - Primary - the source.Span the finding is about.
//   - Notes - optional secondary spans with extra context.
//   - Fixes - optional text edits that would resolve the problem.
//
// # Emitting diagnostics
//
// Phases never store diagnostics themselves; they talk to a Reporter.
// BagReporter appends into a Bag; Unique wraps any Reporter and drops exact
// repeats. Build returns a ReportBuilder that collects notes and fixes
// until Emit.
//
// Package diag does no rendering; see internal/diagfmt.
package diag
