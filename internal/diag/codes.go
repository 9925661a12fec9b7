package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Driver/configuration failures. These are the only fatal codes.
	CfgBadMemoryModel Code = 100
	CfgBadNodeBudget  Code = 101
	CfgBadOption      Code = 102

	// Snapshot/frontend input problems.
	InBadSnapshot    Code = 400
	InBrokenUnit     Code = 401
	InUnknownVersion Code = 402

	// Syntax-only checker findings occupy the 1000 range. Individual
	// checkers allocate codes within it; the driver treats them opaquely.
	SynFindingBase Code = 1000

	// Path-sensitive findings occupy the 2000 range.
	PathFindingBase Code = 2000
)

// ID returns the stable textual identifier of a code.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 100 && ic < 400:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 400 && ic < 1000:
		return fmt.Sprintf("IN%04d", ic)
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("PATH%04d", ic)
	}
	return "E0000"
}

func (c Code) String() string { return c.ID() }
