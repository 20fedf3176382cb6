package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-json-experiment/json"

	"steel/internal/diag"
	"steel/internal/lexer"
	"steel/internal/source"
	"steel/internal/token"
)

// TestJSONBasic проверяет базовое JSON форматирование
func TestJSONBasic(t *testing.T) {
	d := diag.NewError(diag.LexUnterminatedString, 0, span(1, 5, 1, 9), "unterminated string literal").
		WithNote(span(1, 5, 1, 5), "literal starts here")
	bag, fs := newBag(t, "mov \"abc", d)

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{PathMode: PathModeBasename, IncludeNotes: true}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
	}
	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", output.Count, len(output.Diagnostics))
	}

	got := output.Diagnostics[0]
	if got.Severity != "ERROR" || got.Code != "LEX1001" {
		t.Errorf("severity/code = %s/%s", got.Severity, got.Code)
	}
	want := LocationJSON{File: "test.st", Start: PositionJSON{1, 5}, End: PositionJSON{1, 9}}
	if got.Location != want {
		t.Errorf("location = %+v, want %+v", got.Location, want)
	}
	if len(got.Notes) != 1 || got.Notes[0].Message != "literal starts here" {
		t.Errorf("notes = %+v", got.Notes)
	}
}

func TestJSONMaxAndNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.st", []byte("x"))
	bag := diag.NewBag(10)
	for i := range 3 {
		bag.Add(diag.NewError(diag.LexInvalidChar, id, span(1, uint32(i+1), 1, uint32(i+2)), "bad").
			WithNote(span(1, 1, 1, 1), "here"))
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 {
		t.Fatalf("count = %d, want 2", out.Count)
	}
	for _, d := range out.Diagnostics {
		if d.Notes != nil {
			t.Errorf("notes included without IncludeNotes: %+v", d.Notes)
		}
	}

	var buf bytes.Buffer
	if err := JSON(&buf, nil, fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"count": 0`) {
		t.Errorf("empty output = %s", buf.String())
	}
}

func TestTokensJSON(t *testing.T) {
	toks, err := lexer.Lex(".byte 1, 'a'\nmov 2.50", lexer.Options{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatal(err)
	}

	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(out) != len(toks) {
		t.Fatalf("got %d tokens, want %d", len(out), len(toks))
	}

	dir := out[0]
	if dir.Kind != "Word" || dir.Text != ".byte" || !dir.IsAttribute || dir.IsMnemonic {
		t.Errorf("directive = %+v", dir)
	}
	list := out[1]
	if list.Kind != "List" || len(list.List) != 3 {
		t.Fatalf("list = %+v", list)
	}
	if list.List[0].Value == nil || *list.List[0].Value != 1 {
		t.Errorf("first operand = %+v", list.List[0])
	}
	if list.List[1].Kind != "Char" || list.List[1].Char != "a" {
		t.Errorf("second operand = %+v", list.List[1])
	}
	if out[2].Kind != "EndBlock" {
		t.Errorf("out[2] = %+v", out[2])
	}

	num := out[4]
	if num.Number == nil || !num.Number.IsFloat || num.Number.DigitCount != 4 || num.Number.FractionalDigits != 2 {
		t.Errorf("float meta = %+v", num.Number)
	}
	if !out[3].IsMnemonic || out[3].Start != (PositionJSON{2, 1}) {
		t.Errorf("mnemonic = %+v", out[3])
	}
	if out[len(out)-1].Kind != token.EOF.String() {
		t.Errorf("last = %+v", out[len(out)-1])
	}
}
