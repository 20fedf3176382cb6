package lexer

import (
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"

	"steel/internal/diag"
	"steel/internal/source"
)

var simpleEscapes = map[rune]rune{
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	' ':  ' ',
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
}

// scanEscape decodes one escape sequence. The backslash at start has
// already been consumed.
func (lx *Lexer) scanEscape(start source.Position) (rune, error) {
	r, ok := lx.cur.Peek()
	if !ok {
		return 0, lx.fail(diag.LexUnterminatedEscape, start, "unterminated escape sequence")
	}
	if v, ok := simpleEscapes[r]; ok {
		lx.bump()
		return v, nil
	}

	switch r {
	case 'x':
		lx.bump()
		return lx.scanHexEscape(start)
	case 'u', 'U':
		lx.bump()
		return lx.scanBracedHexEscape(start)
	case 'N':
		lx.bump()
		return lx.scanNamedEscape(start)
	}
	return 0, lx.fail(diag.LexInvalidEscape, start, "unknown escape sequence \\"+string(r))
}

// \xHH: one or two hex digits.
func (lx *Lexer) scanHexEscape(start source.Position) (rune, error) {
	var digits strings.Builder
	for digits.Len() < 2 {
		r, ok := lx.cur.Peek()
		if !ok || !isHex(r) {
			break
		}
		digits.WriteRune(lx.bump())
	}
	if digits.Len() == 0 {
		return 0, lx.fail(diag.LexInvalidHexEscape, start, "\\x must be followed by hex digits")
	}
	v, err := strconv.ParseUint(digits.String(), 16, 32)
	if err != nil || !utf8.ValidRune(rune(v)) {
		return 0, lx.fail(diag.LexInvalidHexEscape, start, "\\x"+digits.String()+" is not a valid character")
	}
	return rune(v), nil
}

// \u{H...} and \U{H...}
func (lx *Lexer) scanBracedHexEscape(start source.Position) (rune, error) {
	body, err := lx.scanBraced(start, isHex)
	if err != nil {
		return 0, err
	}
	if body == "" {
		return 0, lx.fail(diag.LexInvalidEscape, start, "empty unicode escape")
	}
	v, perr := strconv.ParseUint(body, 16, 32)
	if perr != nil || v > unicode.MaxRune || !utf8.ValidRune(rune(v)) {
		return 0, lx.fail(diag.LexInvalidEscape, start, "U+"+strings.ToUpper(body)+" is not a valid character")
	}
	return rune(v), nil
}

// \N{NAME}
func (lx *Lexer) scanNamedEscape(start source.Position) (rune, error) {
	name, err := lx.scanBraced(start, nil)
	if err != nil {
		return 0, err
	}
	r, ok := lookupRuneName(name)
	if !ok {
		return 0, lx.fail(diag.LexInvalidEscape, start, "unknown character name \""+name+"\"")
	}
	return r, nil
}

// scanBraced consumes `{...}` and returns what is between the braces.
// When accept is set, every character inside must satisfy it.
func (lx *Lexer) scanBraced(start source.Position, accept func(rune) bool) (string, error) {
	r, ok := lx.cur.Peek()
	if !ok {
		return "", lx.fail(diag.LexUnterminatedEscape, start, "unterminated escape sequence")
	}
	if r != '{' {
		return "", lx.fail(diag.LexInvalidEscape, start, "expected '{' in escape sequence")
	}
	lx.bump()

	var body strings.Builder
	for {
		r, ok := lx.cur.Peek()
		switch {
		case !ok:
			return "", lx.fail(diag.LexUnterminatedEscape, start, "escape sequence is missing '}'")
		case r == '}':
			lx.bump()
			return body.String(), nil
		case accept != nil && !accept(r):
			return "", lx.fail(diag.LexInvalidEscape, start, "unexpected "+strconv.QuoteRune(r)+" in escape sequence")
		}
		body.WriteRune(lx.bump())
	}
}

var (
	runeNamesOnce sync.Once
	runeNames     map[string]rune
)

// lookupRuneName resolves a Unicode character name, ignoring case.
func lookupRuneName(name string) (rune, bool) {
	runeNamesOnce.Do(func() {
		runeNames = make(map[string]rune, 1<<15)
		for r := rune(0); r <= unicode.MaxRune; r++ {
			if r >= 0xD800 && r <= 0xDFFF {
				continue
			}
			n := runenames.Name(r)
			// "<control>", "<CJK Ideograph>" и прочие диапазоны не имеют имени
			if n == "" || strings.HasPrefix(n, "<") {
				continue
			}
			if _, dup := runeNames[n]; !dup {
				runeNames[n] = r
			}
		}
	})
	r, ok := runeNames[strings.ToUpper(strings.TrimSpace(name))]
	return r, ok
}
