package lexer

import (
	"strings"

	"steel/internal/source"
	"steel/internal/token"
	"steel/internal/trace"
)

// scanWord lexes letters, digits, '.' and '_'. A word starting with '.'
// is an attribute (directive) and takes the rest of the line as operands.
func (lx *Lexer) scanWord() error {
	start := lx.pos
	off := lx.offset()
	for {
		r, ok := lx.cur.Peek()
		if !ok || !isWordContinue(r) {
			break
		}
		lx.bump()
	}
	text := lx.textFrom(off)

	meta := token.WordMeta{
		IsMnemonic:  lx.opts.Mnemonics.Contains(text),
		IsAttribute: strings.HasPrefix(text, "."),
	}
	lx.emit(token.Token{
		Kind: token.Word,
		Span: source.Span{Start: start, End: lx.pos},
		Text: text,
		Word: meta,
	})

	if !meta.IsAttribute {
		return nil
	}
	return lx.expandDirective(text)
}

// operand is one comma-separated piece of a directive line.
type operand struct {
	text  string
	start source.Position
}

// expandDirective consumes the rest of the line, lexes every operand on its
// own and emits them as one List followed by EndBlock.
func (lx *Lexer) expandDirective(name string) error {
	start := lx.pos
	off := lx.offset()
	for {
		r, ok := lx.cur.Peek()
		if !ok || r == '\n' || r == '\r' {
			break
		}
		lx.bump()
	}
	end := lx.pos
	raw := lx.textFrom(off)

	ops := splitOperands(raw, start)
	trace.Point(lx.opts.Tracer, trace.ScopeNode, "directive", name, lx.opts.parent)

	if len(ops) > 0 {
		items := make([]token.Token, 0, 2*len(ops))
		for _, op := range ops {
			sub := lx.opts
			sub.Origin = op.start
			toks, err := New(op.text, sub).run()
			if err != nil {
				return err
			}
			items = append(items, toks...)
		}
		lx.emit(token.Token{
			Kind: token.List,
			Span: source.Span{Start: start, End: end},
			List: dropInteriorEOF(items),
		})
	}

	lx.emit(token.Token{Kind: token.EndBlock, Span: source.At(end)})
	return nil
}

// splitOperands splits a directive line on commas that are outside string
// and character literals. Blank operands are dropped.
func splitOperands(raw string, origin source.Position) []operand {
	var (
		ops   []operand
		buf   strings.Builder
		pos   = origin
		from  = origin
		quote rune
		esc   bool
	)
	flush := func() {
		if strings.TrimSpace(buf.String()) != "" {
			ops = append(ops, operand{text: buf.String(), start: from})
		}
		buf.Reset()
	}

	for _, r := range raw {
		switch {
		case esc:
			esc = false
		case quote != 0 && r == '\\':
			esc = true
		case quote != 0 && r == quote:
			quote = 0
		case quote == 0 && (r == '"' || r == '\''):
			quote = r
		case quote == 0 && r == ',':
			flush()
			pos = pos.Advance(r)
			from = pos
			continue
		}
		buf.WriteRune(r)
		pos = pos.Advance(r)
	}
	flush()
	return ops
}

// dropInteriorEOF removes every EOF that is followed by a non-EOF token,
// leaving the single trailing EOF of the last operand.
func dropInteriorEOF(toks []token.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for i, tok := range toks {
		if tok.Kind == token.EOF && i+1 < len(toks) && toks[i+1].Kind != token.EOF {
			continue
		}
		out = append(out, tok)
	}
	return out
}
