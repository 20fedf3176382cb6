package source

import "fmt"

// Position is a 1-based (line, column) location in source text.
// Columns count runes, not bytes.
type Position struct {
	Line uint32
	Col  uint32
}

// Start is the position of the first character of any text.
var Start = Position{Line: 1, Col: 1}

// IsValid reports whether p was set (line and column are 1-based).
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Col > 0
}

// Advance returns the position after consuming r.
func (p Position) Advance(r rune) Position {
	if r == '\n' {
		return p.NewLine()
	}
	p.Col++
	return p
}

// NewLine returns the first column of the following line.
func (p Position) NewLine() Position {
	return Position{Line: p.Line + 1, Col: 1}
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Span is a half-open source range [Start, End).
type Span struct {
	Start Position
	End   Position
}

// At returns the zero-width span located at p.
func At(p Position) Span {
	return Span{Start: p, End: p}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

// Contains reports whether p lies inside the span (End is exclusive).
func (s Span) Contains(p Position) bool {
	return !p.Before(s.Start) && p.Before(s.End)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Cover returns the smallest span enclosing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start.Before(s.Start) {
		s.Start = other.Start
	}
	if s.End.Before(other.End) {
		s.End = other.End
	}
	return s
}
