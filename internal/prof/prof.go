// Package prof wires the runtime profilers behind the CLI flags.
package prof

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// Session owns the profiler outputs of one run. Zero paths disable the
// corresponding profiler; Stop is safe to call once regardless of what
// Start enabled.
type Session struct {
	CPUPath   string
	MemPath   string
	TracePath string

	cpuFile   *os.File
	traceFile *os.File
}

// Start enables the configured profilers. On error everything already
// started is torn down again.
func (s *Session) Start() error {
	if s.CPUPath != "" {
		f, err := os.Create(s.CPUPath)
		if err != nil {
			return fmt.Errorf("failed to create cpu profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("failed to start cpu profile: %w", err)
		}
		s.cpuFile = f
	}
	if s.TracePath != "" {
		f, err := os.Create(s.TracePath)
		if err != nil {
			s.Stop()
			return fmt.Errorf("failed to create trace file: %w", err)
		}
		if err := trace.Start(f); err != nil {
			_ = f.Close()
			s.Stop()
			return fmt.Errorf("failed to start trace: %w", err)
		}
		s.traceFile = f
	}
	return nil
}

// Stop finishes active profilers and writes the heap profile if requested.
func (s *Session) Stop() error {
	if s.traceFile != nil {
		trace.Stop()
		_ = s.traceFile.Close()
		s.traceFile = nil
	}
	if s.cpuFile != nil {
		pprof.StopCPUProfile()
		_ = s.cpuFile.Close()
		s.cpuFile = nil
	}
	if s.MemPath != "" {
		return writeHeap(s.MemPath)
	}
	return nil
}

func writeHeap(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create heap profile: %w", err)
	}
	defer func() { _ = f.Close() }()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("failed to write heap profile: %w", err)
	}
	return nil
}
