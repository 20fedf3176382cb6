package driver

import (
	"steel/internal/source"
	"steel/internal/token"
)

// Module is the per-file record the driver keeps for a tokenized source.
type Module struct {
	Name     string        // file name without extension
	Filename string        // path as loaded
	Source   string        // normalized text
	FileID   source.FileID // id in the owning FileSet
	Tokens   []token.Token // nil when lexing failed
}

func newModule(file *source.File) *Module {
	return &Module{
		Name:     file.Name(),
		Filename: file.Path,
		Source:   file.Text(),
		FileID:   file.ID,
	}
}

// OK reports whether the module was tokenized.
func (m *Module) OK() bool {
	return m != nil && m.Tokens != nil
}
