package lexer_test

import (
	"testing"

	"steel/internal/lexer"
	"steel/internal/token"
)

func TestDirectiveExpansion(t *testing.T) {
	toks := lexOK(t, ".byte 1,2,3")
	expectKinds(t, toks, token.Word, token.List, token.EndBlock, token.EOF)

	if !toks[0].IsAttribute() || toks[0].Span != span(1, 1, 1, 6) {
		t.Fatalf("directive word: %+v", toks[0])
	}
	list := toks[1]
	if list.Span != span(1, 6, 1, 12) {
		t.Fatalf("list span = %v", list.Span)
	}
	expectKinds(t, list.List, token.Number, token.Number, token.Number, token.EOF)

	wantSpans := []struct{ c1, c2 uint32 }{{7, 8}, {9, 10}, {11, 12}, {12, 12}}
	for i, w := range wantSpans {
		if got := list.List[i].Span; got != span(1, w.c1, 1, w.c2) {
			t.Fatalf("list item %d span = %v", i, got)
		}
	}
	for i, v := range []float64{1, 2, 3} {
		if list.List[i].Value != v {
			t.Fatalf("list item %d = %v", i, list.List[i].Value)
		}
	}
	if toks[2].Span != span(1, 12, 1, 12) || toks[3].Span != span(1, 12, 1, 12) {
		t.Fatalf("sentinels: %v %v", toks[2].Span, toks[3].Span)
	}
}

func TestDirectiveWithoutOperands(t *testing.T) {
	toks := lexOK(t, ".text\nnop")
	expectKinds(t, toks, token.Word, token.EndBlock, token.Word, token.EOF)
	if toks[1].Span != span(1, 6, 1, 6) {
		t.Fatalf("EndBlock span = %v", toks[1].Span)
	}

	toks = lexOK(t, ".data   \n")
	expectKinds(t, toks, token.Word, token.EndBlock, token.EOF)
	if toks[1].Span.Start != pos(1, 9) {
		t.Fatalf("EndBlock at %v", toks[1].Span.Start)
	}
}

func TestDirectiveSkipsBlankOperands(t *testing.T) {
	toks := lexOK(t, ".word 1, , 2,")
	expectKinds(t, toks, token.Word, token.List, token.EndBlock, token.EOF)
	expectKinds(t, toks[1].List, token.Number, token.Number, token.EOF)

	toks = lexOK(t, ".word ,,")
	expectKinds(t, toks, token.Word, token.EndBlock, token.EOF)
}

func TestDirectiveStopsAtLineEnd(t *testing.T) {
	for _, input := range []string{".org 16\nhalt", ".org 16\r\nhalt"} {
		toks := lexOK(t, input)
		expectKinds(t, toks, token.Word, token.List, token.EndBlock, token.Word, token.EOF)
		if toks[3].Text != "halt" || toks[3].Span.Start != pos(2, 1) {
			t.Fatalf("%q: trailing word %q at %v", input, toks[3].Text, toks[3].Span.Start)
		}
	}
}

func TestDirectiveOperandsKeepLiteralCommas(t *testing.T) {
	toks := lexOK(t, `.ascii "a,b", ',', "c\"d,e"`)
	list := toks[1].List
	expectKinds(t, list, token.String, token.Char, token.String, token.EOF)
	if list[0].Text != "a,b" || list[1].Char != ',' || list[2].Text != `c"d,e` {
		t.Fatalf("operands: %q %q %q", list[0].Text, list[1].Char, list[2].Text)
	}
}

func TestDirectiveOperandTokens(t *testing.T) {
	toks := lexOK(t, ".entry main: [r1], add")
	list := toks[1].List
	expectKinds(t, list,
		token.Word, token.Colon, token.LBracket, token.Word, token.RBracket, token.Word, token.EOF)
	if !list[5].IsMnemonic() {
		t.Fatal("mnemonic inside operand lost its classification")
	}
}

func TestNestedDirective(t *testing.T) {
	toks := lexOK(t, ".macro .byte 1, 2")
	expectKinds(t, toks, token.Word, token.List, token.EndBlock, token.EOF)

	outer := toks[1].List
	// первый операнд " .byte 1" лексится целиком, второй " 2" отдельно
	expectKinds(t, outer, token.Word, token.List, token.EndBlock, token.Number, token.EOF)
	if !outer[0].IsAttribute() || outer[0].Span != span(1, 8, 1, 13) {
		t.Fatalf("nested directive %+v", outer[0])
	}
	expectKinds(t, outer[1].List, token.Number, token.EOF)

	depths := map[int]int{}
	token.Walk(toks, func(tok token.Token, depth int) bool {
		depths[depth]++
		return true
	})
	if depths[2] != 2 {
		t.Fatalf("expected two tokens at depth 2, got %v", depths)
	}
}

func TestDirectiveOperandErrorsPropagate(t *testing.T) {
	e := lexErr(t, `.byte "abc`, lexer.ErrUnterminatedString)
	if e.Pos != pos(1, 11) || e.Span.Start != pos(1, 7) {
		t.Fatalf("error %+v: positions must be absolute", e)
	}

	e = lexErr(t, "nop\n.byte 1, 2x", lexer.ErrInvalidNumber)
	if e.Span != span(2, 10, 2, 12) {
		t.Fatalf("error span %v", e.Span)
	}
}
