package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0
	// Лексические
	LexInfo               Code = 1000
	LexUnterminatedString Code = 1001
	LexUnterminatedChar   Code = 1002
	LexInvalidChar        Code = 1003
	LexUnterminatedEscape Code = 1004
	LexInvalidEscape      Code = 1005
	LexInvalidHexEscape   Code = 1006
	LexBadNumber          Code = 1007

	// Ввод/вывод
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002

	// Проект (steel.toml)
	ProjInfo          Code = 5000
	ProjManifestError Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnterminatedString: "Unterminated string literal",
	LexUnterminatedChar:   "Unterminated character literal",
	LexInvalidChar:        "Invalid character literal",
	LexUnterminatedEscape: "Unterminated escape sequence",
	LexInvalidEscape:      "Invalid escape sequence",
	LexInvalidHexEscape:   "Invalid hex escape",
	LexBadNumber:          "Invalid number literal",
	IOInfo:                "I/O information",
	IOLoadFileError:       "Failed to load file",
	IOCacheError:          "Token cache failure",
	ProjInfo:              "Project information",
	ProjManifestError:     "Invalid steel.toml",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
