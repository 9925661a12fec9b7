// Package snapshot serializes a frontend's view of one translation unit —
// declarations, call edges, CFG facts and recorded checker/engine outcomes —
// so the scheduling core can be driven without the frontend process. The CLI
// and the tests replay these snapshots.
package snapshot

// SchemaVersion is bumped whenever the payload layout changes.
const SchemaVersion uint16 = 2

// Finding is one serialized checker or engine report.
type Finding struct {
	Code     uint16
	Severity uint8
	Checker  string
	Message  string
	File     uint32 // 1-based index into Unit.Files, 0 = unknown
	Line     uint32
	Col      uint32
}

// EngineRun is the recorded outcome of one exploration variant.
type EngineRun struct {
	Findings []Finding
	// Inlined lists callees (1-based decl indices) the engine folded into
	// this run when inlining was requested.
	Inlined []uint32
	// VisitedBlocks counts basic blocks the exploration touched.
	VisitedBlocks uint32
	// NodesNeeded is the exploration size; a budget below it stops the run
	// early without discarding findings.
	NodesNeeded uint32
}

// Decl describes one declaration of the unit.
type Decl struct {
	Name      string
	Kind      uint8 // decl.Kind
	Family    uint8 // decl.Family
	File      uint32
	Line      uint32
	Col       uint32
	Expansion uint32 // expansion file when macro-expanded, else 0
	HasBody   bool
	Container bool
	// TopLevel marks declarations discovered directly while scanning the
	// unit. Others materialize lazily when graph construction references
	// them.
	TopLevel bool
	// Callees are 1-based decl indices statically referenced by the body.
	Callees []uint32

	// Frontend analysis facts.
	HasCFG    bool
	CFGBlocks uint32
	Liveness  bool

	// Recorded checker and engine outcomes.
	Syntax []Finding
	Plain  *EngineRun // no-GC variant
	GC     *EngineRun // garbage-collected variant
}

// File describes one file of the unit.
type File struct {
	Path  string
	Class uint8 // source.Class
}

// Unit is the serialized translation unit.
type Unit struct {
	Schema   uint16
	Producer string
	MainFile string
	// Broken marks units with upstream parse errors. The scheduling core
	// must not run on them; the caller gates on this flag.
	Broken bool

	Files []File
	Decls []Decl

	// Checker registration recorded by the frontend.
	SyntaxCheckers []string
	PathCheckers   []string

	// Unit-granularity findings.
	UnitBegin []Finding
	UnitEnd   []Finding
}
