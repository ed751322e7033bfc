package diag

import (
	"github.com/s0phia-le/Sloth/internal/source"
)

// Note attaches secondary context to a diagnostic. Each note should add
// new information, not restate the message.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one finding produced by a pipeline phase.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
