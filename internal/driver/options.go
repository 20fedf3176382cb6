package driver

import (
	"steel/internal/lexer"
	"steel/internal/observ"
	"steel/internal/project"
)

// Options configures Tokenize and TokenizeDir.
type Options struct {
	Lexer          lexer.Options
	MaxDiagnostics int
	Jobs           int      // 0 — GOMAXPROCS
	Extensions     []string // nil — project.DefaultExtensions

	// Cache is optional. Fingerprint must change whenever Lexer settings
	// change the token stream (see project.Config.Fingerprint).
	Cache       *DiskCache
	Fingerprint project.Digest

	Progress ProgressSink
	Timings  *observ.Timer // nil — не замеряем
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return project.DefaultExtensions
	}
	return o.Extensions
}
