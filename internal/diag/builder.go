package diag

import "steel/internal/source"

func New(sev Severity, code Code, file source.FileID, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		File:     file,
		Primary:  primary,
		Message:  msg,
		Notes:    nil,
	}
}

func NewError(code Code, file source.FileID, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, file, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
