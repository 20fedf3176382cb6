// Package token defines lexical token kinds and the token record for the
// steel assembly language.
// Invariants:
//   - Every Token carries its own Span; Span.End is never before Span.Start.
//   - Punctuation tokens are zero-width (Span.Start == Span.End).
//   - A List token holds complete, independently lexed tokens of a directive's
//     operands, terminated by exactly one EOF; no other kind uses Token.List.
//   - A stream produced by the lexer ends with exactly one top-level EOF.
//   - NumberMeta is derived from the literal's source text, not from Value.
package token
