package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("default config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "helix.yaml")
	data := `diagnostics: summary
hook_prefixes:
  - Watch
native_packages:
  - example.com/webapp/tags
exclude:
  - gen
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Diagnostics != DiagnosticsSummary {
		t.Errorf("Diagnostics = %q", cfg.Diagnostics)
	}
	if diff := cmp.Diff([]string{"Watch"}, cfg.HookPrefixes); diff != "" {
		t.Errorf("hook prefixes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"example.com/webapp/tags"}, cfg.NativePackages); diff != "" {
		t.Errorf("native packages mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"gen"}, cfg.Exclude); diff != "" {
		t.Errorf("exclude mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "helix.yaml")
	if err := os.WriteFile(path, []byte("diagnostics: none\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Diagnostics != DiagnosticsNone {
		t.Errorf("Diagnostics = %q", cfg.Diagnostics)
	}
	if diff := cmp.Diff(Default().NativePackages, cfg.NativePackages); diff != "" {
		t.Errorf("native packages should keep defaults (-want +got):\n%s", diff)
	}
}

func TestLoadInvalidDiagnostics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "helix.yaml")
	if err := os.WriteFile(path, []byte("diagnostics: verbose\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("invalid diagnostics level should fail")
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("explicit missing path should fail")
	}
}
