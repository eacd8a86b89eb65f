// Package diag defines the diagnostic records produced by the lexer and the
// parser.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity: Info, Warning or Error (severity.go).
//   - Code: compact numeric identifier with a stable string form (codes.go).
//   - Kind: the recovery taxonomy (unexpected, missing, no viable alternative,
//     failed predicate, unterminated unit, lexical).
//   - Primary: the source.Span of the offending token, or a zero-width span
//     where a missing token was synthesized.
//   - Token: index of the offending token in the parsed stream, -1 when the
//     diagnostic does not refer to a token.
//   - Expected: the token kinds that would have been accepted.
//
// The package performs no IO and no human-facing formatting beyond the terse
// golden rendering used in tests; renderers live in internal/diagfmt.
//
// # Reporting
//
// Producers emit through the Reporter interface. BagReporter stores into a
// capped Bag, DedupReporter drops repeats of the same code, kind and span.
// ReportBuilder accumulates optional fields before Emit.
package diag
