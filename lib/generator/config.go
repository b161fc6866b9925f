package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Diagnostic verbosity levels for missed optimizations.
const (
	DiagnosticsNone    = "none"    // report nothing
	DiagnosticsSummary = "summary" // one count per run
	DiagnosticsAll     = "all"     // one entry per dynamic call site
)

// Config is the helix.yaml generator configuration.
type Config struct {
	// Diagnostics controls reporting of call sites left on the dynamic
	// path: none, summary, or all.
	Diagnostics string `yaml:"diagnostics"`
	// HookPrefixes lists extra callee-name prefixes to fingerprint as hooks,
	// beyond the built-in Use/use.
	HookPrefixes []string `yaml:"hook_prefixes"`
	// NativePackages lists import paths treated as native element shorthand
	// namespaces.
	NativePackages []string `yaml:"native_packages"`
	// Exclude lists directory names skipped during package walks.
	Exclude []string `yaml:"exclude"`
}

// Default returns the configuration used when no helix.yaml is present.
func Default() *Config {
	return &Config{
		Diagnostics:    DiagnosticsAll,
		NativePackages: []string{helixImportPath + "/h"},
		Exclude:        []string{"vendor", "testdata"},
	}
}

// Load reads a config file, falling back to defaults. An empty path loads
// ./helix.yaml when present and defaults otherwise; an explicit path must
// exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = "helix.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	switch cfg.Diagnostics {
	case DiagnosticsNone, DiagnosticsSummary, DiagnosticsAll:
	default:
		return nil, fmt.Errorf("%s: invalid diagnostics level %q", path, cfg.Diagnostics)
	}
	return cfg, nil
}
