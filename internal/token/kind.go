package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero value; the lexer never emits it.
	Invalid Kind = iota
	// EOF marks the end of a token stream.
	EOF
	// EndBlock closes the operand block of a directive.
	EndBlock

	Hash     // #
	Colon    // :
	Comma    // ,
	LParen   // (
	RParen   // )
	LBracket // [
	RBracket // ]

	// Char is a character literal; the decoded scalar is in Token.Char.
	Char
	// String is a string literal; the decoded text is in Token.Text.
	String
	// Number is a numeric literal; see Token.Value and Token.Number.
	Number
	// Word is an identifier, mnemonic or attribute; see Token.Word.
	Word
	// List holds the re-lexed operands of a directive in Token.List.
	List
)

var kindNames = [...]string{
	Invalid:  "Invalid",
	EOF:      "EOF",
	EndBlock: "EndBlock",
	Hash:     "Hash",
	Colon:    "Colon",
	Comma:    "Comma",
	LParen:   "LParen",
	RParen:   "RParen",
	LBracket: "LBracket",
	RBracket: "RBracket",
	Char:     "Char",
	String:   "String",
	Number:   "Number",
	Word:     "Word",
	List:     "List",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

var punctKinds = map[rune]Kind{
	'#': Hash,
	':': Colon,
	',': Comma,
	'(': LParen,
	')': RParen,
	'[': LBracket,
	']': RBracket,
}

// LookupPunct returns the punctuation kind for r.
func LookupPunct(r rune) (Kind, bool) {
	k, ok := punctKinds[r]
	return k, ok
}

// IsPunctRune reports whether r lexes as a single-character punctuation token.
func IsPunctRune(r rune) bool {
	_, ok := punctKinds[r]
	return ok
}
