package lexer_test

import (
	"fmt"
	"testing"

	"steel/internal/lexer"
	"steel/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

var fuzzSeeds = []string{
	"",
	"nop\n",
	"start:\n  mov r1, 0x1F\n  ret\n",
	".byte 1, 2, 3\n.ascii \"a,b\", ','\n",
	".word .byte 1, 'x'\r\n",
	"ld [r1 + 4], #3.140\n",
	"\"\\u{1F600}\\N{LATIN SMALL LETTER A}\\x41\"",
	"'\\n' '' 'ab'",
	"\"open",
	".data ,, ,\n",
	"\t@ $ % ^\n\r\n",
}

func FuzzLex(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}
		toks, err := lexer.Lex(input, lexer.Options{})
		if err != nil {
			return
		}
		if err := checkStreamInvariants(toks); err != nil {
			t.Fatalf("Lex(%q): %v", input, err)
		}
	})
}

// checkStreamInvariants проверяет минимальный набор свойств потока:
// 1) ровно один EOF, и он последний
// 2) спаны не перевёрнуты и не идут назад
// 3) элементы List лежат внутри спана List
func checkStreamInvariants(toks []token.Token) error {
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		return fmt.Errorf("stream does not end with EOF")
	}
	for _, tok := range toks[:len(toks)-1] {
		if tok.Kind == token.EOF {
			return fmt.Errorf("EOF at %v before the end of the stream", tok.Span)
		}
	}
	return checkSpans(toks)
}

func checkSpans(toks []token.Token) error {
	for i, tok := range toks {
		if tok.Span.End.Before(tok.Span.Start) {
			return fmt.Errorf("%v span %v ends before it starts", tok.Kind, tok.Span)
		}
		if i > 0 && tok.Span.Start.Before(toks[i-1].Span.Start) {
			return fmt.Errorf("%v at %v starts before %v at %v", tok.Kind, tok.Span, toks[i-1].Kind, toks[i-1].Span)
		}
		if tok.Kind != token.List {
			continue
		}
		for _, item := range tok.List {
			if tok.Span.Cover(item.Span) != tok.Span {
				return fmt.Errorf("list item %v at %v is outside list span %v", item.Kind, item.Span, tok.Span)
			}
		}
		if err := checkSpans(tok.List); err != nil {
			return err
		}
	}
	return nil
}

func TestFuzzSeedsHoldInvariants(t *testing.T) {
	for _, seed := range fuzzSeeds {
		toks, err := lexer.Lex(seed, lexer.Options{})
		if err != nil {
			continue
		}
		if err := checkStreamInvariants(toks); err != nil {
			t.Errorf("Lex(%q): %v", seed, err)
		}
	}
}
