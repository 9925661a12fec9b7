package version

import (
	"strings"
	"testing"
)

func TestVersionHasDefault(t *testing.T) {
	if Version == "" {
		t.Fatalf("Version must have a default value")
	}
	if !strings.Contains(Version, ".") {
		t.Fatalf("Version %q does not look semantic", Version)
	}
}

func TestBuildMetadataOverridable(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() {
		GitCommit, BuildDate = origCommit, origDate
	}()

	GitCommit = "abc123def456"
	BuildDate = "2026-08-27T10:30:00Z"
	if GitCommit != "abc123def456" || BuildDate != "2026-08-27T10:30:00Z" {
		t.Fatalf("ldflags-style overrides must stick: %q %q", GitCommit, BuildDate)
	}
}
