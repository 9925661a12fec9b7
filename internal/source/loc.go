package source

import "fmt"

// Loc is a resolved position of a declaration.
//
// File is the spelling file; Expansion is the file a macro expansion placed
// the declaration into. Outside of macros the two coincide, and frontends may
// leave Expansion unset. Location-based policy must look at the expansion
// side, not the spelling side.
type Loc struct {
	File      FileID
	Line      uint32
	Col       uint32
	Expansion FileID
}

// ExpansionFile returns the file the declaration effectively lives in.
func (l Loc) ExpansionFile() FileID {
	if l.Expansion.IsValid() {
		return l.Expansion
	}
	return l.File
}

// IsValid reports whether the location resolves to any file at all.
func (l Loc) IsValid() bool {
	return l.ExpansionFile().IsValid()
}

func (l Loc) String() string {
	return fmt.Sprintf("%d:%d:%d", l.ExpansionFile(), l.Line, l.Col)
}
