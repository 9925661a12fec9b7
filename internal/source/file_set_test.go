package source

import "testing"

func TestFileSetAddAndLookup(t *testing.T) {
	fs := NewFileSet()
	main := fs.Add("app.c", ClassMain)
	hdr := fs.Add("app.h", ClassHeader)
	if !main.IsValid() || !hdr.IsValid() {
		t.Fatalf("expected valid IDs, got %d and %d", main, hdr)
	}
	if main == hdr {
		t.Fatalf("distinct paths must get distinct IDs")
	}
	if fs.Len() != 2 {
		t.Fatalf("expected 2 files, got %d", fs.Len())
	}
	if id, ok := fs.Lookup("app.h"); !ok || id != hdr {
		t.Fatalf("lookup app.h = (%d, %v), want (%d, true)", id, ok, hdr)
	}
}

func TestFileSetReaddKeepsFirstClass(t *testing.T) {
	fs := NewFileSet()
	first := fs.Add("shared.h", ClassHeader)
	second := fs.Add("shared.h", ClassSystemHeader)
	if first != second {
		t.Fatalf("re-adding a path must return the same ID")
	}
	if got := fs.Get(first).Class; got != ClassHeader {
		t.Fatalf("first classification must win, got %v", got)
	}
}

func TestClassOfUsesExpansionFile(t *testing.T) {
	fs := NewFileSet()
	main := fs.Add("app.c", ClassMain)
	hdr := fs.Add("macros.h", ClassSystemHeader)

	// Spelled in the header, expanded into the main file.
	loc := Loc{File: hdr, Line: 3, Col: 1, Expansion: main}
	if got := fs.ClassOf(loc); got != ClassMain {
		t.Fatalf("expected main classification, got %v", got)
	}
	if got := fs.PathOf(loc); got != "app.c" {
		t.Fatalf("expected app.c, got %q", got)
	}
}

func TestClassOfUnknownFile(t *testing.T) {
	fs := NewFileSet()
	if got := fs.ClassOf(Loc{}); got != ClassUnknown {
		t.Fatalf("unresolved location must classify unknown, got %v", got)
	}
	if fs.Get(NoFileID) != nil {
		t.Fatalf("sentinel ID must not resolve")
	}
}

func TestLocValidity(t *testing.T) {
	fs := NewFileSet()
	main := fs.Add("app.c", ClassMain)
	if (Loc{}).IsValid() {
		t.Fatalf("zero location must be invalid")
	}
	if !(Loc{File: main}).IsValid() {
		t.Fatalf("location with spelling file must be valid")
	}
	if !(Loc{Expansion: main}).IsValid() {
		t.Fatalf("location with expansion file must be valid")
	}
}
