package diag

import (
	"scour/internal/source"
)

// Note is a secondary location attached to a report, typically one step of
// the path the engine followed to reach the bug.
type Note struct {
	Loc source.Loc
	Msg string
}

// Report is one finding produced by a checker or by the engine.
type Report struct {
	Severity Severity
	Code     Code
	Checker  string
	Message  string
	Primary  source.Loc
	Notes    []Note
}
