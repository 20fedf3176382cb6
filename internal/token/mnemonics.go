package token

import (
	"slices"
	"strings"
)

// defaultMnemonics is the instruction set known without configuration.
var defaultMnemonics = []string{
	"nop", "halt", "syscall", "int",
	"add", "sub", "mul", "div", "mod", "neg", "inc", "dec",
	"and", "or", "xor", "not", "shl", "shr",
	"mov", "ld", "st", "lea", "push", "pop",
	"cmp", "test",
	"jmp", "je", "jne", "jz", "jnz", "jl", "jle", "jg", "jge",
	"call", "ret",
}

// MnemonicSet is an immutable set of instruction names.
// Lookups are case-sensitive: only the spelling registered matches.
type MnemonicSet struct {
	names map[string]struct{}
}

// DefaultMnemonics is the built-in instruction set.
var DefaultMnemonics = NewMnemonicSet()

// NewMnemonicSet returns the default set extended with extra names.
// Names that would classify as attributes (leading '.') or are blank are ignored.
func NewMnemonicSet(extra ...string) *MnemonicSet {
	s := &MnemonicSet{names: make(map[string]struct{}, len(defaultMnemonics)+len(extra))}
	for _, name := range defaultMnemonics {
		s.names[name] = struct{}{}
	}
	s.add(extra)
	return s
}

func (s *MnemonicSet) add(names []string) {
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || strings.HasPrefix(name, ".") {
			continue
		}
		s.names[name] = struct{}{}
	}
}

// With returns a copy of s extended with extra names.
func (s *MnemonicSet) With(extra ...string) *MnemonicSet {
	out := &MnemonicSet{names: make(map[string]struct{}, s.Len()+len(extra))}
	if s != nil {
		for name := range s.names {
			out.names[name] = struct{}{}
		}
	}
	out.add(extra)
	return out
}

// Contains reports whether word is a mnemonic. A nil set uses the defaults.
func (s *MnemonicSet) Contains(word string) bool {
	if s == nil {
		s = DefaultMnemonics
	}
	_, ok := s.names[word]
	return ok
}

// Len returns the number of names in the set.
func (s *MnemonicSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Names returns the sorted list of mnemonics.
func (s *MnemonicSet) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.names))
	for name := range s.names {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
