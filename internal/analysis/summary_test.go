package analysis

import "testing"

func TestSummaryAddVisitedClamps(t *testing.T) {
	s := Summary{TotalBlocks: 10}
	s.AddVisited(6)
	s.AddVisited(6)
	if s.VisitedBlocks != 10 {
		t.Fatalf("visited must clamp to the CFG size, got %d", s.VisitedBlocks)
	}
}

func TestSummariesFoldRepeatedRuns(t *testing.T) {
	sums := NewSummaries()
	sum := sums.Of(3)
	sum.TotalBlocks = 10
	sum.AddVisited(4)

	// The second memory-model variant lands in the same record.
	again := sums.Of(3)
	again.AddVisited(3)

	if sums.Len() != 1 {
		t.Fatalf("repeated runs must share one summary, got %d", sums.Len())
	}
	if sums.TotalBasicBlocks() != 10 || sums.TotalVisitedBasicBlocks() != 7 {
		t.Fatalf("totals wrong: %d blocks, %d visited",
			sums.TotalBasicBlocks(), sums.TotalVisitedBasicBlocks())
	}
}

func TestRunStatsFinalizePercentBounds(t *testing.T) {
	sums := NewSummaries()
	a := sums.Of(1)
	a.TotalBlocks = 4
	a.AddVisited(4)

	var st RunStats
	st.finalize(sums)
	if st.PercentReachableBlocks != 100 {
		t.Fatalf("fully visited unit must report 100%%, got %d", st.PercentReachableBlocks)
	}

	var empty RunStats
	empty.finalize(NewSummaries())
	if empty.PercentReachableBlocks != 0 {
		t.Fatalf("empty unit must report 0%%, got %d", empty.PercentReachableBlocks)
	}
}
