// Package analysis is the scheduling core of the driver: it decides which
// declarations are analyzed, in which mode, in what order, and whether a
// caller's inlined run already covers a callee.
package analysis

import (
	"io"

	"scour/internal/callgraph"
	"scour/internal/checker"
	"scour/internal/config"
	"scour/internal/decl"
	"scour/internal/diag"
	"scour/internal/engine"
	"scour/internal/source"
)

// Deps are the external collaborators of one translation-unit pass. The core
// owns none of them.
type Deps struct {
	Files    *source.FileSet
	Source   decl.Source
	Checkers checker.Registry
	Engine   engine.Engine
	Contexts Contexts
	Reporter diag.Reporter
	// Progress receives one line per dispatched declaration when
	// DisplayProgress is set. Nil disables output regardless of the option.
	Progress io.Writer
}

// Contexts caches per-declaration analysis artifacts owned by the frontend:
// control-flow graph shape and the liveness scalability guard.
type Contexts interface {
	// CFGBlocks returns the basic-block count of the declaration's CFG,
	// false when the CFG could not be built from the body.
	CFGBlocks(id decl.ID) (uint32, bool)
	// Liveness reports whether liveness-variable analysis succeeds for the
	// declaration. A failure skips path-sensitive analysis for it only.
	Liveness(id decl.ID) bool
	// Clear drops cached per-declaration state so that one declaration's
	// transient contexts never outlive its own dispatch.
	Clear()
}

// ProcessTranslationUnit runs the full scheduling pass over one unit and
// returns its statistics.
//
// Each call starts with empty visited-sets and an empty summary table; the
// caller aggregates across units if it wants to. The caller is also the one
// responsible for not invoking this on units with prior parse errors.
func ProcessTranslationUnit(store *decl.Store, deps Deps, opts config.Options) (*RunStats, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	p := &pass{
		store:           store,
		deps:            deps,
		opts:            &opts,
		visited:         make(map[decl.ID]struct{}),
		visitedTopLevel: make(map[decl.ID]struct{}),
		summaries:       NewSummaries(),
		stats:           &RunStats{},
	}
	p.run()
	return p.stats, nil
}

// pass owns all mutable state of one translation-unit pass. Single
// traversal owner, no locking: the two visited-sets and the summaries are
// threaded through here exclusively.
type pass struct {
	store           *decl.Store
	deps            Deps
	opts            *config.Options
	visited         map[decl.ID]struct{} // subsumed into some caller's run via inlining
	visitedTopLevel map[decl.ID]struct{} // already dispatched as an independent unit
	summaries       *Summaries
	stats           *RunStats
}

func (p *pass) run() {
	if p.deps.Checkers != nil {
		p.deps.Checkers.RunUnitChecks(p.store, p.deps.Reporter)
	}

	// Syntax checks always run in deterministic store order. When inlining
	// is disabled the path-sensitive pass rides along here too, using the
	// same simple order instead of the call graph.
	visitorMode := ModeSyntax
	if !p.opts.Inlining {
		visitorMode |= ModePath
	}
	recorded := p.store.RecordedLen()
	for i := 0; i < recorded; i++ {
		p.dispatch(p.store.RecordedAt(i), visitorMode, engine.InlineNone)
	}

	if p.opts.Inlining {
		p.runCallGraph()
	}

	if p.deps.Checkers != nil {
		p.deps.Checkers.RunEndOfUnitChecks(p.store, p.deps.Reporter)
	}
	p.stats.finalize(p.summaries)
}

// runCallGraph walks the call graph callers-first and dispatches each
// eligible declaration as a path-sensitive top-level run. Topological order
// lets the "do not reanalyze a previously inlined function" heuristic fire
// as often as possible.
func (p *pass) runCallGraph() {
	g := callgraph.Build(p.store, p.deps.Source)
	for _, n := range g.ReversePostorder() {
		p.stats.FunctionsTopLevel++

		id := g.DeclOf(n)
		if !id.IsValid() {
			// Synthetic root.
			continue
		}
		if p.shouldSkip(id) {
			continue
		}

		d := p.store.Get(id)
		inline := InlineDirective(d, id, p.visited, p.opts)
		inlined := p.dispatch(id, ModePath, inline)
		for _, callee := range inlined {
			p.visited[callee] = struct{}{}
		}
		p.visitedTopLevel[id] = struct{}{}
	}
}

// shouldSkip implements the memoization rule of the ordered pass.
func (p *pass) shouldSkip(id decl.ID) bool {
	if _, ok := p.visitedTopLevel[id]; ok {
		return true
	}

	// Methods are re-analyzed at top level every time they show up as a
	// call-graph root, prior inlining notwithstanding: initializers hide
	// bugs inside defensive code unless analyzed independently, and the
	// naming-convention checks fire more aggressively that way.
	d := p.store.Get(id)
	if d != nil && d.Kind == decl.KindMethod {
		return false
	}

	_, ok := p.visited[id]
	return ok
}
