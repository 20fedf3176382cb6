package diag

import (
	"steel/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one user-facing finding. File identifies the source file in
// the driver's FileSet; Primary locates the problem inside it.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	File     source.FileID
	Primary  source.Span
	Notes    []Note
}
