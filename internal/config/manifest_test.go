package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "scour.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	want := writeManifest(t, root, "")

	got, ok, err := FindManifest(nested)
	if err != nil {
		t.Fatalf("FindManifest failed: %v", err)
	}
	if !ok || got != want {
		t.Fatalf("FindManifest = (%q, %v), want (%q, true)", got, ok, want)
	}
}

func TestManifestApplyOverlaysOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[analyzer]
analyze_all = true
memory_model = "hybrid"
max_nodes = 4000
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}

	opts := Default()
	if err := m.Apply(&opts); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if !opts.AnalyzeAll || opts.MemoryModel != ModelHybrid || opts.MaxNodes != 4000 {
		t.Fatalf("set fields not applied: %+v", opts)
	}
	// Unset fields keep the defaults.
	if !opts.Inlining || opts.MaxReports != 100 {
		t.Fatalf("unset fields must keep defaults: %+v", opts)
	}
}

func TestManifestApplyRejectsBadModel(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[analyzer]
memory_model = "refcount"
`)
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	opts := Default()
	if err := m.Apply(&opts); err == nil {
		t.Fatalf("bad memory model must fail")
	}
}

func TestLoadManifestRejectsMalformedToml(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[analyzer\n")
	if _, err := LoadManifest(path); err == nil {
		t.Fatalf("malformed toml must fail")
	}
}
