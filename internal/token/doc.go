// Package token defines the closed set of token kinds consumed by the parser,
// the Token record and its leading trivia.
//
// Invariants:
//   - Token.Span covers Token.Text exactly.
//   - Concatenating every token's leading trivia and text, in stream order,
//     reproduces the source; the EOF token carries the trailing trivia.
//   - Streaming-query words (select, where, window, ...) are contextual:
//     producers may emit them either as Ident or with their Ctx* kind.
package token
