package analysis

// RunStats are the per-translation-unit counters. They reset on every call
// to ProcessTranslationUnit; aggregation across units belongs to the caller.
type RunStats struct {
	// FunctionsTopLevel counts call-graph nodes considered by the ordered
	// pass, the synthetic root and skipped nodes included.
	FunctionsTopLevel uint32
	// FunctionsAnalyzed counts top-level engine runs that had inlining on.
	FunctionsAnalyzed uint32
	// BlocksInAnalyzedFunctions is the total CFG size across all explored
	// declarations.
	BlocksInAnalyzedFunctions uint64
	// PercentReachableBlocks is visited*100/total, 0 when nothing was
	// explored. Always within [0, 100].
	PercentReachableBlocks uint64
	// MaxCFGSize is the largest control-flow graph seen during dispatch.
	MaxCFGSize uint32
}

func (st *RunStats) finalize(sums *Summaries) {
	total := sums.TotalBasicBlocks()
	st.BlocksInAnalyzedFunctions = total
	if total > 0 {
		st.PercentReachableBlocks = sums.TotalVisitedBasicBlocks() * 100 / total
	}
}
