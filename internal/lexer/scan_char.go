package lexer

import (
	"steel/internal/diag"
	"steel/internal/source"
	"steel/internal/token"
)

// scanChar lexes a character literal: an empty literal (NUL), a single
// character or a single escape.
func (lx *Lexer) scanChar() error {
	start := lx.pos
	off := lx.offset()
	lx.bump() // opening '\''

	r, ok := lx.cur.Peek()
	if !ok {
		return lx.fail(diag.LexUnterminatedChar, start, "unterminated character literal")
	}

	var value rune
	switch r {
	case '\'':
		// пустой литерал означает NUL
	case '\\':
		lx.bump()
		v, err := lx.scanEscape(start)
		if err != nil {
			return err
		}
		value = v
		r, ok = lx.cur.Peek()
	default:
		value = lx.bump()
		r, ok = lx.cur.Peek()
	}

	switch {
	case !ok:
		return lx.fail(diag.LexUnterminatedChar, start, "unterminated character literal")
	case r != '\'':
		return lx.fail(diag.LexInvalidChar, start, "character literal holds more than one character, did you mean a string?")
	}
	lx.bump() // closing '\''

	lx.emit(token.Token{
		Kind: token.Char,
		Span: source.Span{Start: start, End: lx.pos},
		Text: lx.textFrom(off),
		Char: value,
	})
	return nil
}
