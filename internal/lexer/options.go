package lexer

import (
	"steel/internal/cursor"
	"steel/internal/source"
	"steel/internal/token"
	"steel/internal/trace"
)

// Options configures a lexer run. The zero value is valid.
type Options struct {
	Mnemonics *token.MnemonicSet // nil — встроенный набор
	Window    cursor.Window      // zero — cursor.DefaultWindow
	Tracer    trace.Tracer       // nil — trace.Nop

	// Origin is the position of the first character of the text.
	// Directive operands are lexed with Origin set to where the operand
	// starts, so every nested span is absolute.
	Origin source.Position

	parent uint64 // trace span of the enclosing run
}

func (o Options) normalized() Options {
	if o.Mnemonics == nil {
		o.Mnemonics = token.DefaultMnemonics
	}
	if o.Window == (cursor.Window{}) {
		o.Window = cursor.DefaultWindow
	}
	if o.Tracer == nil {
		o.Tracer = trace.Nop
	}
	if !o.Origin.IsValid() {
		o.Origin = source.Start
	}
	return o
}
