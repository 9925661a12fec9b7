package analysis

import "scour/internal/decl"

// Summary accumulates exploration facts for one declaration. It lives for
// the whole translation unit so repeated runs (memory-model variants,
// method re-analysis) fold into the same record.
type Summary struct {
	TotalBlocks   uint32
	VisitedBlocks uint32
}

// AddVisited raises the visited-block count, clamped to the CFG size.
func (s *Summary) AddVisited(n uint32) {
	v := s.VisitedBlocks + n
	if v > s.TotalBlocks {
		v = s.TotalBlocks
	}
	s.VisitedBlocks = v
}

// Summaries is the per-unit table of Summary records.
type Summaries struct {
	m map[decl.ID]*Summary
}

func NewSummaries() *Summaries {
	return &Summaries{m: make(map[decl.ID]*Summary)}
}

// Of returns the summary for a declaration, creating it on first use.
func (s *Summaries) Of(id decl.ID) *Summary {
	sum, ok := s.m[id]
	if !ok {
		sum = &Summary{}
		s.m[id] = sum
	}
	return sum
}

// Len reports how many declarations have summaries.
func (s *Summaries) Len() int { return len(s.m) }

// TotalBasicBlocks sums CFG sizes across all summarized declarations.
func (s *Summaries) TotalBasicBlocks() uint64 {
	var total uint64
	for _, sum := range s.m {
		total += uint64(sum.TotalBlocks)
	}
	return total
}

// TotalVisitedBasicBlocks sums visited blocks across all summaries.
func (s *Summaries) TotalVisitedBasicBlocks() uint64 {
	var total uint64
	for _, sum := range s.m {
		total += uint64(sum.VisitedBlocks)
	}
	return total
}
