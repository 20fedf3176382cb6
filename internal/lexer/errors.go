package lexer

import (
	"errors"
	"fmt"

	"steel/internal/diag"
	"steel/internal/source"
)

// Sentinels matched by errors.Is against a returned *Error.
var (
	ErrUnterminatedString = errors.New("unterminated string literal")
	ErrUnterminatedChar   = errors.New("unterminated character literal")
	ErrInvalidChar        = errors.New("invalid character literal")
	ErrUnterminatedEscape = errors.New("unterminated escape sequence")
	ErrInvalidEscape      = errors.New("invalid escape sequence")
	ErrInvalidHexEscape   = errors.New("invalid hex escape")
	ErrInvalidNumber      = errors.New("invalid number literal")
)

var sentinels = map[diag.Code]error{
	diag.LexUnterminatedString: ErrUnterminatedString,
	diag.LexUnterminatedChar:   ErrUnterminatedChar,
	diag.LexInvalidChar:        ErrInvalidChar,
	diag.LexUnterminatedEscape: ErrUnterminatedEscape,
	diag.LexInvalidEscape:      ErrInvalidEscape,
	diag.LexInvalidHexEscape:   ErrInvalidHexEscape,
	diag.LexBadNumber:          ErrInvalidNumber,
}

var kindNames = map[diag.Code]string{
	diag.LexUnterminatedString: "UnterminatedStringLiteral",
	diag.LexUnterminatedChar:   "UnterminatedCharacterLiteral",
	diag.LexInvalidChar:        "InvalidCharacterLiteral",
	diag.LexUnterminatedEscape: "UnterminatedEscape",
	diag.LexInvalidEscape:      "InvalidEscape",
	diag.LexInvalidHexEscape:   "InvalidHexEscape",
	diag.LexBadNumber:          "InvalidNumberLiteral",
}

// Error is a lexical failure. Lexing stops at the first one.
type Error struct {
	Code diag.Code
	Pos  source.Position // where the failure was detected
	Span source.Span     // offending text, from the literal start to Pos
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind(), e.Msg)
}

// Unwrap returns the sentinel for the error's code.
func (e *Error) Unwrap() error {
	return sentinels[e.Code]
}

// Kind returns the error kind name, e.g. "InvalidEscape".
func (e *Error) Kind() string {
	if name, ok := kindNames[e.Code]; ok {
		return name
	}
	return "LexError"
}

// Diagnostic converts the error into a diagnostic for file.
func (e *Error) Diagnostic(file source.FileID) diag.Diagnostic {
	d := diag.NewError(e.Code, file, e.Span, e.Msg)
	if e.Span.Start != e.Pos {
		d = d.WithNote(source.At(e.Span.Start), "literal starts here")
	}
	return d
}

func (lx *Lexer) fail(code diag.Code, start source.Position, msg string) *Error {
	return &Error{
		Code: code,
		Pos:  lx.pos,
		Span: source.Span{Start: start, End: lx.pos},
		Msg:  msg,
	}
}
