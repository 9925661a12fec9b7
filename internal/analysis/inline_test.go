package analysis

import (
	"testing"

	"scour/internal/config"
	"scour/internal/decl"
	"scour/internal/engine"
)

func TestInlineDirectiveFollowsOption(t *testing.T) {
	opts := config.Default()
	d := &decl.Decl{Name: "f", Kind: decl.KindFunc}
	visited := map[decl.ID]struct{}{}

	if got := InlineDirective(d, 1, visited, &opts); got != engine.InlineAll {
		t.Fatalf("inlining on must give InlineAll, got %v", got)
	}
	opts.Inlining = false
	if got := InlineDirective(d, 1, visited, &opts); got != engine.InlineNone {
		t.Fatalf("inlining off must give InlineNone, got %v", got)
	}
}

func TestInlineDirectiveReanalyzedMethodLosesInlining(t *testing.T) {
	opts := config.Default()
	visited := map[decl.ID]struct{}{7: {}}

	m := &decl.Decl{Name: "update", Kind: decl.KindMethod, Family: decl.FamilyPlain}
	if got := InlineDirective(m, 7, visited, &opts); got != engine.InlineNone {
		t.Fatalf("re-analyzed plain method must not inline, got %v", got)
	}

	// A previously inlined plain function keeps InlineAll; the scheduler
	// never re-dispatches it anyway.
	f := &decl.Decl{Name: "helper", Kind: decl.KindFunc}
	if got := InlineDirective(f, 7, visited, &opts); got != engine.InlineAll {
		t.Fatalf("function directive must follow the option, got %v", got)
	}
}

func TestInlineDirectiveInitFamilyKeepsInlining(t *testing.T) {
	opts := config.Default()
	visited := map[decl.ID]struct{}{7: {}}
	m := &decl.Decl{Name: "init", Kind: decl.KindMethod, Family: decl.FamilyInit}
	if got := InlineDirective(m, 7, visited, &opts); got != engine.InlineAll {
		t.Fatalf("init-family method must re-expand fully, got %v", got)
	}
}
