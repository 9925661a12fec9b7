// Package ui renders interactive progress for multi-unit analysis runs.
package ui

// Stage names a step of the per-unit pipeline.
type Stage uint8

const (
	StageLoad Stage = iota
	StageAnalyze
	StageReport
)

// Status marks the lifecycle of a stage for one unit.
type Status uint8

const (
	StatusStart Status = iota
	StatusDone
	StatusError
)

// Event is emitted by the analyze command as units move through the
// pipeline. A closed event channel means the run is over.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}
