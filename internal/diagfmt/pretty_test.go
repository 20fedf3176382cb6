package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"steel/internal/diag"
	"steel/internal/source"
)

func span(l1, c1, l2, c2 uint32) source.Span {
	return source.Span{
		Start: source.Position{Line: l1, Col: c1},
		End:   source.Position{Line: l2, Col: c2},
	}
}

// newBag создаёт FileSet с одним файлом и Bag с одной ошибкой
func newBag(t *testing.T, content string, d diag.Diagnostic) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("/work/src/test.st", []byte(content))
	d.File = id
	bag := diag.NewBag(10)
	if !bag.Add(d) {
		t.Fatalf("bag rejected diagnostic")
	}
	return bag, fs
}

func TestPrettyHeaderAndCaret(t *testing.T) {
	d := diag.NewError(diag.LexUnterminatedString, 0, span(2, 5, 2, 9), "unterminated string literal")
	bag, fs := newBag(t, "nop\nmov \"abc\n", d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	out := buf.String()

	for _, want := range []string{
		"test.st:2:5: error LEX1001: unterminated string literal\n",
		"2 | mov \"abc\n",
		" |     ^~~~\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "1 | nop") {
		t.Errorf("context line printed without Context option:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("escape codes with Color=false:\n%s", out)
	}
}

func TestPrettyContextAndNotes(t *testing.T) {
	d := diag.NewError(diag.LexInvalidEscape, 0, span(2, 9, 2, 10), "unknown escape").
		WithNote(span(2, 5, 2, 5), "literal starts here")
	bag, fs := newBag(t, "nop\nmov \"ab\\q\"\n", d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, Context: 1, ShowNotes: true})
	out := buf.String()

	if !strings.Contains(out, "1 | nop\n") {
		t.Errorf("missing context line:\n%s", out)
	}
	if !strings.Contains(out, "  note: test.st:2:5: literal starts here\n") {
		t.Errorf("missing note:\n%s", out)
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if strings.Contains(buf.String(), "note:") {
		t.Errorf("notes printed with ShowNotes=false:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	d := diag.NewError(diag.LexBadNumber, 0, span(1, 1, 1, 3), "invalid number literal")
	bag, fs := newBag(t, "1x\n", d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Color: true})
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected escape codes with Color=true:\n%q", buf.String())
	}
}

func TestUnderline(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		span      source.Span
		wantPad   string
		wantWidth int
	}{
		{"single", "abc", span(1, 2, 1, 3), " ", 1},
		{"empty span", "abc", span(1, 4, 1, 4), "   ", 1},
		{"tab kept", "\tx", span(1, 2, 1, 3), "\t", 1},
		{"wide rune", "界a", span(1, 1, 1, 2), "", 2},
		{"after wide rune", "界a", span(1, 2, 1, 3), "  ", 1},
		{"multiline", "mov \"abc", span(1, 5, 3, 1), "    ", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pad, width := underline(tt.text, tt.span)
			if pad != tt.wantPad || width != tt.wantWidth {
				t.Errorf("underline(%q, %v) = %q, %d; want %q, %d",
					tt.text, tt.span, pad, width, tt.wantPad, tt.wantWidth)
			}
		})
	}
}

func TestParsePathMode(t *testing.T) {
	for in, want := range map[string]PathMode{
		"":         PathModeAuto,
		"abs":      PathModeAbsolute,
		"Relative": PathModeRelative,
		"basename": PathModeBasename,
	} {
		got, err := ParsePathMode(in)
		if err != nil || got != want {
			t.Errorf("ParsePathMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParsePathMode("nope"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
