package lexer

import (
	"unicode"

	"steel/internal/token"
)

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'f') ||
		(r >= 'A' && r <= 'F')
}

func isWordStart(r rune) bool {
	return r == '.' || r == '_' || unicode.IsLetter(r)
}

func isWordContinue(r rune) bool {
	return isWordStart(r) || unicode.IsDigit(r)
}

// isNumberDelim reports whether r ends a number run.
func isNumberDelim(r rune) bool {
	return unicode.IsSpace(r) || r == '"' || r == '\'' || token.IsPunctRune(r)
}
