// Package checker defines the registry boundary between the driver and the
// checkers it schedules. Individual checker algorithms are not part of the
// core; the driver only needs to invoke them on a declaration or on the
// whole translation unit.
package checker

import (
	"scour/internal/decl"
	"scour/internal/diag"
)

// SyntaxChecker inspects one declaration's tree, with no path exploration.
type SyntaxChecker interface {
	Name() string
	CheckDecl(store *decl.Store, id decl.ID, r diag.Reporter)
}

// UnitChecker runs once per translation unit.
type UnitChecker interface {
	Name() string
	CheckUnit(store *decl.Store, r diag.Reporter)
}

// Registry is the driver's view of the configured checkers.
type Registry interface {
	// RunSyntaxChecks invokes every syntax-only checker on the declaration.
	RunSyntaxChecks(store *decl.Store, id decl.ID, r diag.Reporter)
	// RunUnitChecks fires before any declaration is dispatched.
	RunUnitChecks(store *decl.Store, r diag.Reporter)
	// RunEndOfUnitChecks fires after the whole pass.
	RunEndOfUnitChecks(store *decl.Store, r diag.Reporter)
	// HasPathSensitive reports whether any path-sensitive checker is
	// registered with the engine. When false the engine is never invoked.
	HasPathSensitive() bool
}

// Set is the default Registry, composed from registered checkers.
type Set struct {
	syntax    []SyntaxChecker
	unit      []UnitChecker
	endOfUnit []UnitChecker
	path      []string
}

func NewSet() *Set { return &Set{} }

func (s *Set) AddSyntax(c SyntaxChecker)  { s.syntax = append(s.syntax, c) }
func (s *Set) AddUnit(c UnitChecker)      { s.unit = append(s.unit, c) }
func (s *Set) AddEndOfUnit(c UnitChecker) { s.endOfUnit = append(s.endOfUnit, c) }

// AddPathSensitive declares a path-sensitive checker by name. The checker
// itself lives inside the engine; the registry only tracks registration so
// the dispatcher can skip engine runs when nothing is listening.
func (s *Set) AddPathSensitive(name string) { s.path = append(s.path, name) }

func (s *Set) RunSyntaxChecks(store *decl.Store, id decl.ID, r diag.Reporter) {
	for _, c := range s.syntax {
		c.CheckDecl(store, id, r)
	}
}

func (s *Set) RunUnitChecks(store *decl.Store, r diag.Reporter) {
	for _, c := range s.unit {
		c.CheckUnit(store, r)
	}
}

func (s *Set) RunEndOfUnitChecks(store *decl.Store, r diag.Reporter) {
	for _, c := range s.endOfUnit {
		c.CheckUnit(store, r)
	}
}

func (s *Set) HasPathSensitive() bool { return len(s.path) > 0 }

// PathSensitive lists the registered path-sensitive checker names.
func (s *Set) PathSensitive() []string { return s.path }
