package analysis

import (
	"fmt"

	"scour/internal/config"
	"scour/internal/decl"
	"scour/internal/diag"
	"scour/internal/engine"
)

// dispatch runs the requested checks on one declaration and returns the
// callees the engine subsumed via inlining, if any.
func (p *pass) dispatch(id decl.ID, mode Mode, inline engine.InlineMode) []decl.ID {
	d := p.store.Get(id)
	if d == nil || !d.HasBody {
		return nil
	}
	mode = EffectiveMode(d, mode, p.opts, p.deps.Files)
	if mode == ModeNone {
		return nil
	}

	p.displayProgress(d, mode)

	if p.deps.Contexts != nil {
		if blocks, ok := p.deps.Contexts.CFGBlocks(id); ok {
			if blocks > p.stats.MaxCFGSize {
				p.stats.MaxCFGSize = blocks
			}
		}
		// Contexts of the previous declaration must not survive into this
		// dispatch; peak memory stays bounded per declaration.
		p.deps.Contexts.Clear()
	}

	if mode&ModeSyntax != 0 && p.deps.Checkers != nil {
		p.deps.Checkers.RunSyntaxChecks(p.store, id, p.deps.Reporter)
	}

	var inlined []decl.ID
	if mode&ModePath != 0 && p.deps.Engine != nil &&
		p.deps.Checkers != nil && p.deps.Checkers.HasPathSensitive() {
		inlined = p.runPathSensitive(id, inline)
		if inline != engine.InlineNone {
			p.stats.FunctionsAnalyzed++
		}
	}
	return inlined
}

// runPathSensitive composes the engine runs the memory model asks for. The
// hybrid model runs both variants back to back: object-lifetime assumptions
// change which paths are feasible, so the runs are independent.
func (p *pass) runPathSensitive(id decl.ID, inline engine.InlineMode) []decl.ID {
	switch p.opts.MemoryModel {
	case config.ModelNone:
		return p.exploreOnce(id, false, inline)
	case config.ModelGCOnly:
		return p.exploreOnce(id, true, inline)
	case config.ModelHybrid:
		inlined := p.exploreOnce(id, false, inline)
		return append(inlined, p.exploreOnce(id, true, inline)...)
	}
	return nil
}

// exploreOnce is a single engine invocation under one set of GC assumptions.
func (p *pass) exploreOnce(id decl.ID, gcEnabled bool, inline engine.InlineMode) []decl.ID {
	if p.deps.Contexts == nil {
		return nil
	}
	blocks, ok := p.deps.Contexts.CFGBlocks(id)
	if !ok {
		// Malformed body: no CFG, no path-sensitive run, no error.
		return nil
	}
	if !p.deps.Contexts.Liveness(id) {
		// Liveness does not scale for this declaration; syntax results
		// already reported are kept.
		return nil
	}

	res := p.deps.Engine.Explore(id, gcEnabled, inline, p.opts.MaxNodes)

	sum := p.summaries.Of(id)
	sum.TotalBlocks = blocks
	sum.AddVisited(res.VisitedBlocks)

	// Flush whatever was found, budget exhaustion notwithstanding: a
	// bounded stop is a cancelled exploration, not a failed one.
	diag.Flush(p.deps.Reporter, res.Reports)

	return res.Inlined
}

func (p *pass) displayProgress(d *decl.Decl, mode Mode) {
	if !p.opts.DisplayProgress || p.deps.Progress == nil {
		return
	}
	path := ""
	if p.deps.Files != nil {
		path = p.deps.Files.PathOf(d.Loc)
	}
	name := d.Name
	if d.Kind == decl.KindBlock {
		name = fmt.Sprintf("block(line:%d,col:%d)", d.Loc.Line, d.Loc.Col)
	}
	fmt.Fprintf(p.deps.Progress, "ANALYZE (%s): %s %s\n", mode, path, name)
}
