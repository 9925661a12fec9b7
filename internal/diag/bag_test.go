package diag

import (
	"testing"

	"scour/internal/source"
)

func report(code Code, sev Severity, checker string, line uint32, msg string) Report {
	return Report{
		Severity: sev,
		Code:     code,
		Checker:  checker,
		Message:  msg,
		Primary:  source.Loc{File: 1, Line: line, Col: 1},
	}
}

func TestBagCap(t *testing.T) {
	b := NewBag(2)
	if !b.Add(report(SynFindingBase, SevWarning, "x", 1, "one")) {
		t.Fatalf("first add must succeed")
	}
	if !b.Add(report(SynFindingBase, SevWarning, "x", 2, "two")) {
		t.Fatalf("second add must succeed")
	}
	if b.Add(report(SynFindingBase, SevWarning, "x", 3, "three")) {
		t.Fatalf("add past the cap must drop")
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(4)
	b.Add(report(SynFindingBase, SevWarning, "x", 1, "w"))
	if b.HasErrors() {
		t.Fatalf("warnings are not errors")
	}
	b.Add(report(InBrokenUnit, SevError, "driver", 0, "broken"))
	if !b.HasErrors() {
		t.Fatalf("expected HasErrors after an error report")
	}
}

func TestBagSortIsStableByLocation(t *testing.T) {
	b := NewBag(8)
	b.Add(report(SynFindingBase, SevWarning, "x", 9, "late"))
	b.Add(report(SynFindingBase, SevWarning, "x", 2, "early"))
	b.Add(report(PathFindingBase, SevError, "y", 2, "early-error"))
	b.Sort()

	items := b.Items()
	if items[0].Primary.Line != 2 || items[0].Severity != SevError {
		t.Fatalf("same-location error must sort first, got %+v", items[0])
	}
	if items[2].Primary.Line != 9 {
		t.Fatalf("latest line must sort last, got %+v", items[2])
	}
}

func TestBagDedupCollapsesRepeatedFindings(t *testing.T) {
	b := NewBag(8)
	r := report(PathFindingBase, SevWarning, "nil-deref", 5, "possible nil dereference")
	b.Add(r)
	b.Add(r) // second memory-model variant found the same thing
	b.Add(report(PathFindingBase, SevWarning, "nil-deref", 6, "possible nil dereference"))
	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("expected 2 after dedup, got %d", b.Len())
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	a.Add(report(SynFindingBase, SevWarning, "x", 1, "a"))
	other := NewBag(1)
	other.Add(report(SynFindingBase, SevWarning, "x", 2, "b"))
	a.Merge(other)
	if a.Len() != 2 {
		t.Fatalf("merge must keep all items, got %d", a.Len())
	}
}

func TestDedupReporterSuppressesDuplicates(t *testing.T) {
	bag := NewBag(8)
	r := NewDedupReporter(BagReporter{Bag: bag})
	loc := source.Loc{File: 1, Line: 3, Col: 7}

	r.Report(PathFindingBase, SevWarning, "nil-deref", loc, "boom", nil)
	r.Report(PathFindingBase, SevWarning, "nil-deref", loc, "boom", nil)
	r.Report(PathFindingBase, SevWarning, "nil-deref", loc, "other", nil)

	if bag.Len() != 2 {
		t.Fatalf("expected duplicate suppressed, got %d items", bag.Len())
	}
}

func TestCodeRanges(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{CfgBadMemoryModel, "CFG0100"},
		{InBrokenUnit, "IN0401"},
		{SynFindingBase, "SYN1000"},
		{PathFindingBase + 7, "PATH2007"},
		{UnknownCode, "E0000"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.want {
			t.Fatalf("Code(%d).ID() = %q, want %q", tc.code, got, tc.want)
		}
	}
}
