package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"steel/internal/diag"
	"steel/internal/source"
	"steel/internal/token"
)

// scanNumber lexes a maximal run up to whitespace, punctuation or a quote.
// Accepted forms: 42, 3.140, 1e-3, 0x1F, 0b101, 0o17.
// NumberMeta is taken from the raw text, not from the parsed value.
func (lx *Lexer) scanNumber() error {
	start := lx.pos
	off := lx.offset()
	for {
		r, ok := lx.cur.Peek()
		if !ok || isNumberDelim(r) {
			break
		}
		lx.bump()
	}
	text := lx.textFrom(off)

	value, ok := parseNumber(text)
	if !ok {
		return lx.fail(diag.LexBadNumber, start, "invalid number literal \""+text+"\"")
	}

	meta := token.NumberMeta{DigitCount: utf8.RuneCountInString(text)}
	if dot := strings.IndexByte(text, '.'); dot >= 0 {
		meta.IsFloat = true
		meta.FractionalDigits = utf8.RuneCountInString(text[dot+1:])
	}

	lx.emit(token.Token{
		Kind:   token.Number,
		Span:   source.Span{Start: start, End: lx.pos},
		Text:   text,
		Value:  value,
		Number: meta,
	})
	return nil
}

func parseNumber(text string) (float64, bool) {
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		return v, true
	}
	// 0x1F, 0b101, 0o17 — только целые
	if strings.IndexByte(text, '.') < 0 {
		if v, err := strconv.ParseUint(text, 0, 64); err == nil {
			return float64(v), true
		}
	}
	return 0, false
}
