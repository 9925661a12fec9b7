package diag

import "scour/internal/source"

// Reporter is the minimal contract for flushing findings out of the core.
// Implementations: BagReporter (collects into a Bag), DedupReporter (filter).
type Reporter interface {
	Report(code Code, sev Severity, checker string, primary source.Loc, msg string, notes []Note)
}

// Warn is a shortcut for the common warning-severity finding.
func Warn(r Reporter, code Code, checker string, primary source.Loc, msg string) {
	if r == nil {
		return
	}
	r.Report(code, SevWarning, checker, primary, msg, nil)
}

// Flush sends every report in the slice to the reporter.
func Flush(r Reporter, reports []Report) {
	if r == nil {
		return
	}
	for i := range reports {
		rep := &reports[i]
		r.Report(rep.Code, rep.Severity, rep.Checker, rep.Primary, rep.Message, rep.Notes)
	}
}

// BagReporter collects reports into a Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, checker string, primary source.Loc, msg string, notes []Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Report{
		Severity: sev, Code: code, Checker: checker,
		Message: msg, Primary: primary, Notes: notes,
	})
}
