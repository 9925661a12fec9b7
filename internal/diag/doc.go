// Package diag defines the bug-report model shared by checkers, the
// symbolic-execution engine and the driver.
//
// Report is the central record: a code, a severity, a message and the
// location of the finding, plus optional notes describing the path that led
// to it. Producers emit through a Reporter so that storage and rendering stay
// decoupled; Bag aggregates reports with a cap, deterministic ordering and
// deduplication.
//
// The package performs no IO and no formatting. Rendering belongs to the CLI
// layer; this core only collects and flushes.
package diag
