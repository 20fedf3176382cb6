package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"steel/internal/token"
)

// maxTokenText ограничивает ширину текста токена в pretty-выводе.
const maxTokenText = 40

// NumberJSON mirrors token.NumberMeta.
type NumberJSON struct {
	IsFloat          bool `json:"is_float,omitzero"`
	DigitCount       int  `json:"digit_count"`
	FractionalDigits int  `json:"fractional_digits,omitzero"`
}

// TokenOutput is the JSON shape of a single token. List tokens carry their
// operands in List.
type TokenOutput struct {
	Kind        string        `json:"kind"`
	Start       PositionJSON  `json:"start"`
	End         PositionJSON  `json:"end"`
	Text        string        `json:"text,omitempty"`
	Char        string        `json:"char,omitempty"`
	Value       *float64      `json:"value,omitzero"`
	Number      *NumberJSON   `json:"number,omitzero"`
	IsMnemonic  bool          `json:"mnemonic,omitzero"`
	IsAttribute bool          `json:"attribute,omitzero"`
	List        []TokenOutput `json:"list,omitempty"`
}

// FileTokensJSON is the per-file record of `steel tokenize --format json`.
type FileTokensJSON struct {
	File        string           `json:"file"`
	Cached      bool             `json:"cached,omitzero"`
	Tokens      []TokenOutput    `json:"tokens"`
	Diagnostics []DiagnosticJSON `json:"diagnostics,omitempty"`
}

// BuildTokensOutput converts tokens (recursively) into their JSON shape.
func BuildTokensOutput(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for i := range tokens {
		out = append(out, buildToken(&tokens[i]))
	}
	return out
}

func buildToken(tok *token.Token) TokenOutput {
	t := TokenOutput{
		Kind:  tok.Kind.String(),
		Start: makePosition(tok.Span.Start),
		End:   makePosition(tok.Span.End),
	}
	switch tok.Kind {
	case token.Char:
		t.Char = string(tok.Char)
	case token.String:
		t.Text = tok.Text
	case token.Number:
		v := tok.Value
		t.Text = tok.Text
		t.Value = &v
		t.Number = &NumberJSON{
			IsFloat:          tok.Number.IsFloat,
			DigitCount:       tok.Number.DigitCount,
			FractionalDigits: tok.Number.FractionalDigits,
		}
	case token.Word:
		t.Text = tok.Text
		t.IsMnemonic = tok.Word.IsMnemonic
		t.IsAttribute = tok.Word.IsAttribute
	case token.List:
		t.List = BuildTokensOutput(tok.List)
	}
	return t
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	return WriteJSON(w, BuildTokensOutput(tokens))
}

// FormatTokensPretty выводит токены в человекочитаемом формате.
// Содержимое List печатается с отступом под самим List.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	return formatTokensPretty(w, tokens, 0)
}

func formatTokensPretty(w io.Writer, tokens []token.Token, depth int) error {
	indent := strings.Repeat("    ", depth)
	for i := range tokens {
		tok := &tokens[i]
		line := fmt.Sprintf("%s%3d: %-9s %s", indent, i+1, tok.Kind, tok.Span)
		if detail := tokenDetail(tok); detail != "" {
			line += " " + detail
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if tok.Kind == token.List {
			if err := formatTokensPretty(w, tok.List, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func tokenDetail(tok *token.Token) string {
	switch tok.Kind {
	case token.Char:
		return strconv.QuoteRune(tok.Char)
	case token.String:
		return quoteTruncated(tok.Text)
	case token.Number:
		s := quoteTruncated(tok.Text) + " = " + strconv.FormatFloat(tok.Value, 'g', -1, 64)
		if tok.Number.IsFloat {
			s += fmt.Sprintf(" (float, %d digits, %d fractional)", tok.Number.DigitCount, tok.Number.FractionalDigits)
		} else {
			s += fmt.Sprintf(" (%d digits)", tok.Number.DigitCount)
		}
		return s
	case token.Word:
		s := quoteTruncated(tok.Text)
		switch {
		case tok.Word.IsAttribute:
			s += " attribute"
		case tok.Word.IsMnemonic:
			s += " mnemonic"
		}
		return s
	case token.List:
		return fmt.Sprintf("[%d]", len(tok.List))
	default:
		return ""
	}
}

func quoteTruncated(s string) string {
	return strconv.Quote(runewidth.Truncate(s, maxTokenText, "…"))
}
