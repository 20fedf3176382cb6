// Package lexer tokenizes steel assembly source.
//
// The lexer walks a cursor.Cursor over the input runes and dispatches on
// the lookahead character:
//
//   - space, tab, newline, carriage return: skipped (lines are counted)
//   - double and single quotes: string and character literals with escape decoding
//   - digit: number literal
//   - letter, '.', '_': word; words starting with '.' are directives whose
//     comma-separated operands are lexed recursively into a List token
//     followed by EndBlock
//   - # : , ( ) [ ]: zero-width punctuation
//
// Any other character is skipped without a token. Every token carries a
// source.Span of 1-based line/column positions.
//
// The first malformed literal stops lexing; Lex returns it as *Error,
// which unwraps to one of the Err* sentinels.
package lexer
