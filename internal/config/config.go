// Package config carries the analyzer options consumed by the scheduling
// core. The core performs no flag parsing; the CLI fills Options and calls
// Validate before any declaration is processed.
package config

import (
	"fmt"
)

// MemoryModel selects the garbage-collection variants the engine runs under.
type MemoryModel uint8

const (
	// ModelNone: one engine run assuming no garbage collection.
	ModelNone MemoryModel = iota
	// ModelGCOnly: one engine run under garbage-collected semantics.
	ModelGCOnly
	// ModelHybrid: two independent runs, one per variant.
	ModelHybrid
)

func (m MemoryModel) String() string {
	switch m {
	case ModelNone:
		return "none"
	case ModelGCOnly:
		return "gc-only"
	case ModelHybrid:
		return "hybrid"
	}
	return "invalid"
}

// ParseMemoryModel maps the textual option to a MemoryModel.
func ParseMemoryModel(s string) (MemoryModel, error) {
	switch s {
	case "", "none":
		return ModelNone, nil
	case "gc-only":
		return ModelGCOnly, nil
	case "hybrid":
		return ModelHybrid, nil
	}
	return ModelNone, fmt.Errorf("unknown memory model %q (want none|gc-only|hybrid)", s)
}

// Options are the read-only inputs to mode policy, inlining policy and the
// dispatcher.
type Options struct {
	// AnalyzeAll lifts the main-file restriction: headers get the full
	// requested mode instead of syntax-only.
	AnalyzeAll bool
	// AnalyzeFunction restricts analysis to declarations whose name matches
	// exactly. Empty means no filter.
	AnalyzeFunction string
	// Inlining folds callees into their caller's engine run and switches the
	// path-sensitive pass to call-graph order.
	Inlining bool
	// MaxNodes bounds one engine exploration; 0 means no budget.
	MaxNodes uint32
	// MemoryModel selects the GC variants for path-sensitive runs.
	MemoryModel MemoryModel
	// DisplayProgress prints one line per dispatched declaration.
	DisplayProgress bool
	// MaxReports caps the per-unit report bag.
	MaxReports int
}

// Default returns the options the CLI starts from.
func Default() Options {
	return Options{
		Inlining:   true,
		MaxNodes:   150000,
		MaxReports: 100,
	}
}

// Validate rejects malformed configuration before the pass starts. This is
// the only fail-fast path in the core.
func (o *Options) Validate() error {
	if o.MemoryModel > ModelHybrid {
		return fmt.Errorf("unknown memory model %d", o.MemoryModel)
	}
	if o.MaxReports <= 0 {
		return fmt.Errorf("max reports must be positive, got %d", o.MaxReports)
	}
	return nil
}
