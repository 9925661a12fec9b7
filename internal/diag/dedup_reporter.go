package diag

import "scour/internal/source"

type dedupKey struct {
	code    Code
	sev     Severity
	checker string
	file    source.FileID
	line    uint32
	col     uint32
	msg     string
}

// DedupReporter wraps another Reporter and suppresses duplicate findings with
// the same code, severity, checker, location and message.
type DedupReporter struct {
	next Reporter
	seen map[dedupKey]struct{}
}

// NewDedupReporter returns a Reporter that forwards only unique findings.
func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{
		next: next,
		seen: make(map[dedupKey]struct{}),
	}
}

func (r *DedupReporter) Report(code Code, sev Severity, checker string, primary source.Loc, msg string, notes []Note) {
	if r.next == nil {
		return
	}
	key := dedupKey{
		code:    code,
		sev:     sev,
		checker: checker,
		file:    primary.ExpansionFile(),
		line:    primary.Line,
		col:     primary.Col,
		msg:     msg,
	}
	if _, dup := r.seen[key]; dup {
		return
	}
	r.seen[key] = struct{}{}
	r.next.Report(code, sev, checker, primary, msg, notes)
}
