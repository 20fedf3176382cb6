package lexer

import (
	"strconv"

	"steel/internal/cursor"
	"steel/internal/source"
	"steel/internal/token"
	"steel/internal/trace"
)

// Lexer turns one source text into a token stream.
// A Lexer is single-use: Run consumes its input.
type Lexer struct {
	src  []rune
	cur  *cursor.Cursor[rune]
	pos  source.Position
	opts Options
	out  []token.Token
}

// New prepares a lexer over text.
func New(text string, opts Options) *Lexer {
	opts = opts.normalized()
	src := []rune(text)
	return &Lexer{
		src:  src,
		cur:  cursor.NewWithWindow(src, opts.Window),
		pos:  opts.Origin,
		opts: opts,
	}
}

// Lex tokenizes text. The result always ends with exactly one EOF token
// located at the final position; on failure the first *Error is returned.
func Lex(text string, opts Options) ([]token.Token, error) {
	return New(text, opts).Run()
}

// Run lexes the whole input.
func (lx *Lexer) Run() ([]token.Token, error) {
	span := trace.Begin(lx.opts.Tracer, trace.ScopePass, "lex", lx.opts.parent)
	lx.opts.parent = span.ID()

	toks, err := lx.run()
	if err != nil {
		span.WithExtra("error", err.Error()).End("failed")
		return nil, err
	}
	span.WithExtra("tokens", strconv.Itoa(len(toks))).End("")
	return toks, nil
}

func (lx *Lexer) run() ([]token.Token, error) {
	for {
		r, ok := lx.cur.Peek()
		if !ok {
			break
		}

		var err error
		switch {
		case r == ' ' || r == '\t':
			lx.bump()
		case r == '\n':
			lx.bump()
		case r == '\r':
			lx.bumpCarriageReturn()
		case r == '"':
			err = lx.scanString()
		case r == '\'':
			err = lx.scanChar()
		case isDigit(r):
			err = lx.scanNumber()
		case isWordStart(r):
			err = lx.scanWord()
		default:
			if kind, ok := token.LookupPunct(r); ok {
				lx.emit(token.Token{Kind: kind, Span: source.At(lx.pos), Text: string(r)})
			}
			// неизвестные символы молча пропускаем
			lx.bump()
		}
		if err != nil {
			return nil, err
		}
	}

	lx.emit(token.Token{Kind: token.EOF, Span: source.At(lx.pos)})
	return lx.out, nil
}

func (lx *Lexer) emit(tok token.Token) {
	lx.out = append(lx.out, tok)
}

// bump consumes the current character and moves the position past it.
func (lx *Lexer) bump() rune {
	r, ok := lx.cur.Eat()
	if !ok {
		return 0
	}
	lx.pos = lx.pos.Advance(r)
	return r
}

// bumpCarriageReturn consumes '\r'. A lone CR breaks the line; in CRLF the
// following '\n' does it.
func (lx *Lexer) bumpCarriageReturn() {
	if next, ok := lx.cur.PeekAt(1); ok && next == '\n' {
		lx.cur.Eat()
		return
	}
	lx.cur.Eat()
	lx.pos = lx.pos.NewLine()
}

// offset is the number of characters consumed so far.
func (lx *Lexer) offset() int {
	return lx.cur.Consumed()
}

func (lx *Lexer) textFrom(off int) string {
	return string(lx.src[off:lx.offset()])
}
