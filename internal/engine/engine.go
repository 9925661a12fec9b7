// Package engine declares the boundary to the symbolic-execution engine.
// The driver treats one exploration as an opaque unit of work with a node
// budget; the engine internals are out of scope for this repository.
package engine

import (
	"scour/internal/decl"
	"scour/internal/diag"
)

// InlineMode tells the engine whether to fold reachable callees into the
// caller's exploration.
type InlineMode uint8

const (
	InlineNone InlineMode = iota
	InlineAll
)

func (m InlineMode) String() string {
	if m == InlineAll {
		return "inline-all"
	}
	return "inline-none"
}

// Result of one exploration run.
type Result struct {
	// Reports are the findings discovered on feasible paths. They are valid
	// even when the budget ran out.
	Reports []diag.Report
	// Inlined lists the callees the engine folded into this run. The
	// scheduler treats them as analyzed and skips their top-level dispatch.
	Inlined []decl.ID
	// VisitedBlocks counts the basic blocks the exploration touched.
	VisitedBlocks uint32
	// BudgetExhausted marks a bounded stop. Not an error: whatever was found
	// up to that point stands.
	BudgetExhausted bool
}

// Engine explores the feasible paths of one declaration.
//
// gcEnabled selects the object-lifetime assumptions for the run; the hybrid
// memory model makes the dispatcher call Explore twice, once per variant.
// budget bounds the exploration node count, 0 meaning unbounded.
type Engine interface {
	Explore(id decl.ID, gcEnabled bool, inline InlineMode, budget uint32) Result
}
