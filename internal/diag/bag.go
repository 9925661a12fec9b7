package diag

import (
	"fmt"
	"sort"
)

// Bag aggregates reports up to a fixed cap.
type Bag struct {
	items []Report
	max   uint16
}

func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Report, 0, max),
		max:   uint16(max),
	}
}

// Add appends a report unless the cap is reached.
// Returns false when the report was dropped.
func (b *Bag) Add(r Report) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, r)
	return true
}

func (b *Bag) Cap() uint16 { return b.max }

func (b *Bag) Len() int { return len(b.items) }

// HasErrors reports whether any finding has Severity >= Error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// Items returns a read-only view of the collected reports.
// Callers must not modify the returned slice.
func (b *Bag) Items() []Report {
	return b.items
}

// Merge appends reports from another Bag, growing the cap if needed.
func (b *Bag) Merge(other *Bag) {
	newTotal := len(b.items) + len(other.items)
	if uint16(newTotal) > b.max {
		b.max = uint16(newTotal)
	}
	b.items = append(b.items, other.items...)
}

// Sort orders reports by file, line, column, severity (desc), code, checker
// so that output is stable across runs.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		ri, rj := b.items[i], b.items[j]
		if ri.Primary.ExpansionFile() != rj.Primary.ExpansionFile() {
			return ri.Primary.ExpansionFile() < rj.Primary.ExpansionFile()
		}
		if ri.Primary.Line != rj.Primary.Line {
			return ri.Primary.Line < rj.Primary.Line
		}
		if ri.Primary.Col != rj.Primary.Col {
			return ri.Primary.Col < rj.Primary.Col
		}
		if ri.Severity != rj.Severity {
			return ri.Severity > rj.Severity
		}
		if ri.Code != rj.Code {
			return ri.Code < rj.Code
		}
		return ri.Checker < rj.Checker
	})
}

// Dedup drops repeated findings with the same code, checker and location.
// The engine legitimately re-runs a declaration under both memory-model
// variants; identical findings from the two runs collapse to one.
func (b *Bag) Dedup() {
	seen := make(map[string]bool)
	newitems := make([]Report, 0, len(b.items))
	for _, r := range b.items {
		key := fmt.Sprintf("%s:%s:%s:%s", r.Code, r.Checker, r.Primary.String(), r.Message)
		if seen[key] {
			continue
		}
		seen[key] = true
		newitems = append(newitems, r)
	}
	b.items = newitems
}
