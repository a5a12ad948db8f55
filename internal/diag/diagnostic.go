package diag

import (
	"leoc/internal/source"
)

// Note attaches secondary location context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single reported finding with its primary location.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
