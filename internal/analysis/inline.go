package analysis

import (
	"scour/internal/config"
	"scour/internal/decl"
	"scour/internal/engine"
)

// InlineDirective decides how the engine inlines for one top-level run.
//
// The default follows the inlining option. A declaration that was already
// subsumed into some caller's run is only re-analyzed when it is a method,
// and that re-run keeps inlining off — except for initializer-family
// methods, which are re-expanded fully every time.
func InlineDirective(d *decl.Decl, id decl.ID, visited map[decl.ID]struct{}, opts *config.Options) engine.InlineMode {
	how := engine.InlineNone
	if opts.Inlining {
		how = engine.InlineAll
	}
	if _, ok := visited[id]; ok {
		if d != nil && d.Kind == decl.KindMethod && d.Family != decl.FamilyInit {
			how = engine.InlineNone
		}
	}
	return how
}
