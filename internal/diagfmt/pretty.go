package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"steel/internal/diag"
	"steel/internal/source"
)

type palette struct {
	err, warn, info, note *color.Color
	code, path, gutter    *color.Color
	caret                 *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgBlue, color.Bold),
		code:   color.New(color.Bold),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.code, p.path, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <sev> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	p := newPalette(opts.Color)
	items := bag.Items()
	for i := range items {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, &items[i], fs, opts, p)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	path := formatPath(fs, d.File, opts.PathMode)
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		p.path.Sprintf("%s:%d:%d", path, d.Primary.Start.Line, d.Primary.Start.Col),
		p.severity(d.Severity).Sprint(strings.ToLower(d.Severity.String())),
		p.code.Sprint(d.Code.ID()),
		d.Message,
	)

	if fs != nil && int(d.File) < fs.Len() {
		writeSnippet(w, fs.Get(d.File), d.Primary, int(opts.Context), p)
	}

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		fmt.Fprintf(w, "  %s %s: %s\n",
			p.note.Sprint("note:"),
			p.path.Sprintf("%s:%d:%d", path, n.Span.Start.Line, n.Span.Start.Col),
			n.Msg,
		)
	}
}

func writeSnippet(w io.Writer, f *source.File, span source.Span, context int, p palette) {
	line := span.Start.Line
	if line == 0 {
		return
	}
	text := strings.TrimRight(f.GetLine(line), "\r")

	first := line
	for context > 0 && first > 1 {
		first--
		context--
	}
	gutterWidth := len(fmt.Sprint(line))
	for n := first; n < line; n++ {
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, n), strings.TrimRight(f.GetLine(n), "\r"))
	}
	fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, line), text)

	pad, width := underline(text, span)
	fmt.Fprintf(w, "%s %s%s\n",
		p.gutter.Sprintf("%*s |", gutterWidth, ""),
		pad,
		p.caret.Sprint("^"+strings.Repeat("~", width-1)),
	)
}

// underline returns the padding before the caret and the caret width for
// span on the given line. Tabs in the padding are preserved.
func underline(text string, span source.Span) (string, int) {
	runes := []rune(text)
	startCol := int(span.Start.Col)
	if startCol < 1 {
		startCol = 1
	}
	startIdx := min(startCol-1, len(runes))

	var pad strings.Builder
	for _, r := range runes[:startIdx] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	width := 1
	switch {
	case span.Empty():
	case span.End.Line == span.Start.Line && int(span.End.Col) > startCol:
		endIdx := min(int(span.End.Col)-1, len(runes))
		if endIdx > startIdx {
			width = max(runewidth.StringWidth(string(runes[startIdx:endIdx])), 1)
		}
	case span.End.Line > span.Start.Line && startIdx < len(runes):
		width = max(runewidth.StringWidth(string(runes[startIdx:])), 1)
	}
	return pad.String(), width
}
