package snapshot

import (
	"scour/internal/checker"
	"scour/internal/decl"
	"scour/internal/diag"
	"scour/internal/engine"
	"scour/internal/source"
)

// Replay reconstructs the frontend collaborators of one unit from its
// snapshot: the declaration store and file set, plus adapters implementing
// decl.Source, analysis.Contexts, engine.Engine and the checker registry
// from the recorded facts.
type Replay struct {
	Unit  *Unit
	Files *source.FileSet
	Store *decl.Store

	ids     []decl.ID       // 1-based snapshot decl index -> store ID
	backIdx map[decl.ID]int // store ID -> snapshot decl index (0-based)
	fileIDs []source.FileID // 1-based snapshot file index -> FileID

	// scratch per-declaration context state; dropped on Clear.
	scratch map[decl.ID]struct{}
}

// NewReplay materializes the store and file set from the snapshot. All
// declarations are allocated in the arena (the frontend owns them anyway),
// but only non-lazy top-level ones are recorded upfront; the rest join the
// top-level sequence when graph construction first references them.
func NewReplay(u *Unit) *Replay {
	r := &Replay{
		Unit:    u,
		Files:   source.NewFileSet(),
		Store:   decl.NewStore(uint32(len(u.Decls))),
		ids:     make([]decl.ID, len(u.Decls)+1),
		backIdx: make(map[decl.ID]int, len(u.Decls)),
		scratch: make(map[decl.ID]struct{}),
	}

	r.fileIDs = make([]source.FileID, len(u.Files)+1)
	for i := range u.Files {
		f := &u.Files[i]
		r.fileIDs[i+1] = r.Files.Add(f.Path, source.Class(f.Class))
	}

	for i := range u.Decls {
		sd := &u.Decls[i]
		id := r.Store.New(decl.Decl{
			Name:      sd.Name,
			Kind:      decl.Kind(sd.Kind),
			Family:    decl.Family(sd.Family),
			Loc:       r.locOf(sd),
			HasBody:   sd.HasBody,
			Container: sd.Container,
		})
		r.ids[i+1] = id
		r.backIdx[id] = i
	}

	for i := range u.Decls {
		sd := &u.Decls[i]
		if !sd.TopLevel {
			continue
		}
		if sd.Container && decl.Kind(sd.Kind) == decl.KindMethod {
			r.Store.RecordContainer(r.ids[i+1])
			continue
		}
		r.Store.Record(r.ids[i+1])
	}

	return r
}

func (r *Replay) locOf(sd *Decl) source.Loc {
	loc := source.Loc{Line: sd.Line, Col: sd.Col}
	if sd.File > 0 {
		loc.File = r.fileIDs[sd.File]
	}
	if sd.Expansion > 0 {
		loc.Expansion = r.fileIDs[sd.Expansion]
	}
	return loc
}

func (r *Replay) declOf(id decl.ID) *Decl {
	i, ok := r.backIdx[id]
	if !ok {
		return nil
	}
	return &r.Unit.Decls[i]
}

// Callees implements decl.Source. Referencing a declaration that is not yet
// in the top-level sequence materializes it there, which is how late
// discovery during graph construction reaches the scheduler.
func (r *Replay) Callees(store *decl.Store, id decl.ID) []decl.ID {
	sd := r.declOf(id)
	if sd == nil {
		return nil
	}
	callees := make([]decl.ID, 0, len(sd.Callees))
	for _, c := range sd.Callees {
		cid := r.ids[c]
		if !cid.IsValid() {
			continue
		}
		store.Record(cid)
		callees = append(callees, cid)
	}
	return callees
}

// CFGBlocks implements the context cache boundary.
func (r *Replay) CFGBlocks(id decl.ID) (uint32, bool) {
	sd := r.declOf(id)
	if sd == nil || !sd.HasCFG {
		return 0, false
	}
	r.scratch[id] = struct{}{}
	return sd.CFGBlocks, true
}

// Liveness reports the recorded liveness-scalability verdict.
func (r *Replay) Liveness(id decl.ID) bool {
	sd := r.declOf(id)
	return sd != nil && sd.Liveness
}

// Clear drops scratch per-declaration state.
func (r *Replay) Clear() {
	clear(r.scratch)
}

// Explore implements engine.Engine by replaying the recorded run for the
// requested memory-model variant.
func (r *Replay) Explore(id decl.ID, gcEnabled bool, inline engine.InlineMode, budget uint32) engine.Result {
	sd := r.declOf(id)
	if sd == nil {
		return engine.Result{}
	}
	run := sd.Plain
	if gcEnabled {
		run = sd.GC
	}
	if run == nil {
		return engine.Result{}
	}

	res := engine.Result{
		VisitedBlocks:   run.VisitedBlocks,
		BudgetExhausted: budget > 0 && run.NodesNeeded > budget,
	}
	res.Reports = r.reports(run.Findings)
	if inline == engine.InlineAll {
		res.Inlined = make([]decl.ID, 0, len(run.Inlined))
		for _, c := range run.Inlined {
			if cid := r.ids[c]; cid.IsValid() {
				res.Inlined = append(res.Inlined, cid)
			}
		}
	}
	return res
}

func (r *Replay) reports(findings []Finding) []diag.Report {
	if len(findings) == 0 {
		return nil
	}
	out := make([]diag.Report, 0, len(findings))
	for i := range findings {
		f := &findings[i]
		loc := source.Loc{Line: f.Line, Col: f.Col}
		if f.File > 0 && int(f.File) < len(r.fileIDs) {
			loc.File = r.fileIDs[f.File]
		}
		out = append(out, diag.Report{
			Severity: diag.Severity(f.Severity),
			Code:     diag.Code(f.Code),
			Checker:  f.Checker,
			Message:  f.Message,
			Primary:  loc,
		})
	}
	return out
}

// Registry assembles the checker registry the snapshot recorded: one replay
// syntax checker per registered name, unit-granularity checks at both ends,
// and the path-sensitive registrations that gate engine runs.
func (r *Replay) Registry() *checker.Set {
	set := checker.NewSet()
	for _, name := range r.Unit.SyntaxCheckers {
		set.AddSyntax(&replaySyntax{replay: r, name: name})
	}
	if len(r.Unit.UnitBegin) > 0 {
		set.AddUnit(&replayUnit{replay: r, findings: r.Unit.UnitBegin})
	}
	if len(r.Unit.UnitEnd) > 0 {
		set.AddEndOfUnit(&replayUnit{replay: r, findings: r.Unit.UnitEnd})
	}
	for _, name := range r.Unit.PathCheckers {
		set.AddPathSensitive(name)
	}
	return set
}

// replaySyntax re-emits the findings one recorded syntax checker produced.
type replaySyntax struct {
	replay *Replay
	name   string
}

func (c *replaySyntax) Name() string { return c.name }

func (c *replaySyntax) CheckDecl(store *decl.Store, id decl.ID, rep diag.Reporter) {
	sd := c.replay.declOf(id)
	if sd == nil {
		return
	}
	for i := range sd.Syntax {
		if sd.Syntax[i].Checker != c.name {
			continue
		}
		diag.Flush(rep, c.replay.reports(sd.Syntax[i:i+1]))
	}
}

// replayUnit re-emits unit-granularity findings.
type replayUnit struct {
	replay   *Replay
	findings []Finding
}

func (c *replayUnit) Name() string { return "replay-unit" }

func (c *replayUnit) CheckUnit(store *decl.Store, rep diag.Reporter) {
	diag.Flush(rep, c.replay.reports(c.findings))
}
