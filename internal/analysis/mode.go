package analysis

import (
	"scour/internal/config"
	"scour/internal/decl"
	"scour/internal/source"
)

// Mode is the two-bit effective analysis mode of one dispatch.
type Mode uint8

const (
	ModeNone   Mode = 0
	ModeSyntax Mode = 0x1
	ModePath   Mode = 0x2
)

func (m Mode) String() string {
	switch m {
	case ModeSyntax:
		return "Syntax"
	case ModePath:
		return "Path"
	case ModeSyntax | ModePath:
		return "Syntax|Path"
	}
	return "None"
}

// EffectiveMode narrows the requested mode for one declaration.
//
// The specific-function filter wins over everything. Without -analyze-all,
// declarations are treated by where their expansion location lives: the main
// file keeps the full mode, non-system headers lose the path bit, system
// headers and unresolvable locations get nothing. The result never contains
// a bit the request lacked.
func EffectiveMode(d *decl.Decl, requested Mode, opts *config.Options, files *source.FileSet) Mode {
	if opts.AnalyzeFunction != "" && d.Name != opts.AnalyzeFunction {
		return ModeNone
	}
	if opts.AnalyzeAll {
		return requested
	}
	if files == nil {
		return requested
	}
	class := files.ClassOf(d.Loc)
	if class == source.ClassMain {
		return requested
	}
	if !d.Loc.IsValid() || class == source.ClassSystemHeader || class == source.ClassUnknown {
		return ModeNone
	}
	return requested &^ ModePath
}
