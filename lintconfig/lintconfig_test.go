package lintconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "strict: true\nwatch:\n  debounce_ms: 500\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Strict {
		t.Error("Strict = false, want true")
	}
	if got := cfg.Watch.Debounce(); got != 500*time.Millisecond {
		t.Errorf("Debounce = %v, want 500ms", got)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "strict: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Watch.DebounceMs != Default().Watch.DebounceMs {
		t.Errorf("DebounceMs = %d, want default %d", cfg.Watch.DebounceMs, Default().Watch.DebounceMs)
	}
}

func TestLoadRejectsNegativeDebounce(t *testing.T) {
	path := writeConfig(t, "watch:\n  debounce_ms: -1\n")

	if _, err := Load(path); err == nil {
		t.Error("Load accepted a negative debounce")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "strict: [unterminated\n")

	if _, err := Load(path); err == nil {
		t.Error("Load accepted malformed YAML")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load accepted a missing file")
	}
}

func TestLoadOrDefaultWithoutPath(t *testing.T) {
	// Run from a directory that has no default config file.
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatal(err)
		}
	})

	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.Strict {
		t.Error("Strict = true, want default false")
	}
	if got := cfg.Watch.Debounce(); got != 200*time.Millisecond {
		t.Errorf("Debounce = %v, want 200ms", got)
	}
}
