package lexer

import (
	"strings"

	"steel/internal/diag"
	"steel/internal/source"
	"steel/internal/token"
)

// scanString lexes "..." with escapes. Newlines inside are kept as-is.
func (lx *Lexer) scanString() error {
	start := lx.pos
	lx.bump() // opening '"'

	var value strings.Builder
	for {
		r, ok := lx.cur.Peek()
		if !ok {
			return lx.fail(diag.LexUnterminatedString, start, "unterminated string literal")
		}
		switch r {
		case '"':
			lx.bump()
			lx.emit(token.Token{
				Kind: token.String,
				Span: source.Span{Start: start, End: lx.pos},
				Text: value.String(),
			})
			return nil
		case '\\':
			lx.bump()
			v, err := lx.scanEscape(start)
			if err != nil {
				return err
			}
			value.WriteRune(v)
		default:
			value.WriteRune(lx.bump())
		}
	}
}
