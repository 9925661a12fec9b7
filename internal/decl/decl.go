// Package decl models the declarations of one translation unit and the
// append-only store the driver schedules from. Declarations are owned by the
// frontend; the store holds handles, never bodies.
package decl

import "scour/internal/source"

// ID identifies a declaration within a Store.
type ID uint32

const NoID ID = 0

func (id ID) IsValid() bool { return id != NoID }

// Kind distinguishes the shapes of analyzable declarations.
type Kind uint8

const (
	KindFunc Kind = iota
	KindMethod
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindFunc:
		return "func"
	case KindMethod:
		return "method"
	case KindBlock:
		return "block"
	}
	return "unknown"
}

// Family tags methods with a semantic role, resolved once at insertion time.
type Family uint8

const (
	FamilyPlain Family = iota
	// FamilyInit marks initializer-like methods. They are re-expanded with
	// full inlining on re-analysis; defensive-nil-propagation bugs are only
	// visible that way.
	FamilyInit
)

func (f Family) String() string {
	if f == FamilyInit {
		return "init"
	}
	return "plain"
}

// Decl is a handle to one function, method or block of the translation unit.
type Decl struct {
	Name      string
	Kind      Kind
	Family    Family
	Loc       source.Loc
	HasBody   bool
	Container bool // method owned by a container grouping; recorded via the container callback
}
