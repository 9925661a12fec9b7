package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest is an optional scour.toml next to the analyzed snapshots. It
// pre-sets analyzer options for a project; command-line flags override it.
type Manifest struct {
	Analyzer analyzerSection `toml:"analyzer"`
}

type analyzerSection struct {
	AnalyzeAll      *bool   `toml:"analyze_all"`
	AnalyzeFunction *string `toml:"analyze_function"`
	Inlining        *bool   `toml:"inlining"`
	MaxNodes        *uint32 `toml:"max_nodes"`
	MemoryModel     *string `toml:"memory_model"`
	DisplayProgress *bool   `toml:"display_progress"`
	MaxReports      *int    `toml:"max_reports"`
}

// FindManifest walks up from startDir looking for scour.toml.
func FindManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "scour.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest decodes a scour.toml file.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return &m, nil
}

// Apply overlays the manifest onto options. Unset manifest fields keep the
// existing values.
func (m *Manifest) Apply(opts *Options) error {
	a := &m.Analyzer
	if a.AnalyzeAll != nil {
		opts.AnalyzeAll = *a.AnalyzeAll
	}
	if a.AnalyzeFunction != nil {
		opts.AnalyzeFunction = *a.AnalyzeFunction
	}
	if a.Inlining != nil {
		opts.Inlining = *a.Inlining
	}
	if a.MaxNodes != nil {
		opts.MaxNodes = *a.MaxNodes
	}
	if a.MemoryModel != nil {
		model, err := ParseMemoryModel(*a.MemoryModel)
		if err != nil {
			return err
		}
		opts.MemoryModel = model
	}
	if a.DisplayProgress != nil {
		opts.DisplayProgress = *a.DisplayProgress
	}
	if a.MaxReports != nil {
		opts.MaxReports = *a.MaxReports
	}
	return nil
}
