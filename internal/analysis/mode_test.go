package analysis

import (
	"testing"

	"scour/internal/config"
	"scour/internal/decl"
	"scour/internal/source"
)

func TestModeString(t *testing.T) {
	cases := []struct {
		mode Mode
		want string
	}{
		{ModeNone, "None"},
		{ModeSyntax, "Syntax"},
		{ModePath, "Path"},
		{ModeSyntax | ModePath, "Syntax|Path"},
	}
	for _, tc := range cases {
		if got := tc.mode.String(); got != tc.want {
			t.Fatalf("Mode(%d).String() = %q, want %q", tc.mode, got, tc.want)
		}
	}
}

func TestEffectiveModeByLocation(t *testing.T) {
	files := source.NewFileSet()
	main := files.Add("app.c", source.ClassMain)
	hdr := files.Add("app.h", source.ClassHeader)
	sys := files.Add("stdio.h", source.ClassSystemHeader)

	opts := config.Default()
	full := ModeSyntax | ModePath

	cases := []struct {
		name string
		loc  source.Loc
		want Mode
	}{
		{"main file keeps full mode", source.Loc{File: main}, full},
		{"header loses path bit", source.Loc{File: hdr}, ModeSyntax},
		{"system header gets nothing", source.Loc{File: sys}, ModeNone},
		{"unresolved location gets nothing", source.Loc{}, ModeNone},
		{"expansion into main wins over header spelling", source.Loc{File: hdr, Expansion: main}, full},
		{"expansion into header loses path bit", source.Loc{File: main, Expansion: hdr}, ModeSyntax},
	}
	for _, tc := range cases {
		d := &decl.Decl{Name: "f", Kind: decl.KindFunc, Loc: tc.loc}
		if got := EffectiveMode(d, full, &opts, files); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestEffectiveModeAnalyzeAllLiftsRestriction(t *testing.T) {
	files := source.NewFileSet()
	sys := files.Add("stdio.h", source.ClassSystemHeader)

	opts := config.Default()
	opts.AnalyzeAll = true
	d := &decl.Decl{Name: "f", Kind: decl.KindFunc, Loc: source.Loc{File: sys}}
	if got := EffectiveMode(d, ModeSyntax|ModePath, &opts, files); got != (ModeSyntax | ModePath) {
		t.Fatalf("analyze-all must keep the full mode, got %v", got)
	}
}

func TestEffectiveModeFunctionFilterWins(t *testing.T) {
	files := source.NewFileSet()
	main := files.Add("app.c", source.ClassMain)

	opts := config.Default()
	opts.AnalyzeFunction = "target"

	miss := &decl.Decl{Name: "other", Kind: decl.KindFunc, Loc: source.Loc{File: main}}
	if got := EffectiveMode(miss, ModeSyntax|ModePath, &opts, files); got != ModeNone {
		t.Fatalf("non-matching name must get nothing, got %v", got)
	}
	hit := &decl.Decl{Name: "target", Kind: decl.KindFunc, Loc: source.Loc{File: main}}
	if got := EffectiveMode(hit, ModeSyntax|ModePath, &opts, files); got != (ModeSyntax | ModePath) {
		t.Fatalf("matching name must keep the mode, got %v", got)
	}
}

func TestEffectiveModeNeverAddsBits(t *testing.T) {
	files := source.NewFileSet()
	main := files.Add("app.c", source.ClassMain)
	hdr := files.Add("app.h", source.ClassHeader)
	opts := config.Default()

	for _, loc := range []source.Loc{{File: main}, {File: hdr}} {
		for _, requested := range []Mode{ModeNone, ModeSyntax, ModePath, ModeSyntax | ModePath} {
			d := &decl.Decl{Name: "f", Kind: decl.KindFunc, Loc: loc}
			got := EffectiveMode(d, requested, &opts, files)
			if got&^requested != 0 {
				t.Fatalf("requested %v produced %v with extra bits", requested, got)
			}
		}
	}
}
