package diag

// Severity defines the importance of a report.
type Severity uint8

const (
	// SevNote is for informational findings.
	SevNote Severity = iota
	// SevWarning is the usual severity of analyzer findings.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevNote:
		return "NOTE"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
