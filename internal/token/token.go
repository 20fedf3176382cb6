package token

import (
	"steel/internal/source"
)

// NumberMeta describes the source form of a numeric literal.
type NumberMeta struct {
	IsFloat          bool // literal contains '.'
	DigitCount       int  // characters in the literal text
	FractionalDigits int  // characters after '.'
}

// WordMeta classifies a word.
type WordMeta struct {
	IsMnemonic  bool
	IsAttribute bool
}

// Token represents a single source token with its location.
// Which payload field is meaningful depends on Kind:
//
//	Char   -> Char
//	String -> Text (decoded)
//	Number -> Text (raw), Value, Number
//	Word   -> Text (raw), Word
//	List   -> List
type Token struct {
	Kind   Kind
	Span   source.Span
	Text   string
	Char   rune
	Value  float64
	Number NumberMeta
	Word   WordMeta
	List   []Token
}

// IsLiteral reports whether the token is a character, string or number literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Char, String, Number:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is single-character punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case Hash, Colon, Comma, LParen, RParen, LBracket, RBracket:
		return true
	default:
		return false
	}
}

// IsSentinel reports whether the token is EOF or EndBlock.
func (t Token) IsSentinel() bool {
	return t.Kind == EOF || t.Kind == EndBlock
}

// IsMnemonic reports whether the token is a word naming an instruction.
func (t Token) IsMnemonic() bool { return t.Kind == Word && t.Word.IsMnemonic }

// IsAttribute reports whether the token is a directive word.
func (t Token) IsAttribute() bool { return t.Kind == Word && t.Word.IsAttribute }

// Walk calls fn for every token in depth-first order, descending into List
// contents right after the List token itself. depth is 0 for top-level tokens.
// Walk stops early when fn returns false.
func Walk(tokens []Token, fn func(tok Token, depth int) bool) {
	walk(tokens, 0, fn)
}

func walk(tokens []Token, depth int, fn func(Token, int) bool) bool {
	for _, t := range tokens {
		if !fn(t, depth) {
			return false
		}
		if t.Kind == List && !walk(t.List, depth+1, fn) {
			return false
		}
	}
	return true
}
