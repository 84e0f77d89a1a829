package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"showscan/internal/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	if err := (&cfg).Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatalf("expected missing config file, resolved %s", resolved)
	}
	if cfg.Probe.FFprobeBinary != "ffprobe" {
		t.Fatalf("unexpected ffprobe binary %q", cfg.Probe.FFprobeBinary)
	}
	if cfg.Probe.TimeoutSeconds != 60 {
		t.Fatalf("unexpected probe timeout %d", cfg.Probe.TimeoutSeconds)
	}
	if cfg.Scan.NotesMaxBytes != 8000 {
		t.Fatalf("unexpected notes cap %d", cfg.Scan.NotesMaxBytes)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`catalog_dir = "` + filepath.Join(dir, "catalog") + `"`,
		"[probe]",
		`ffprobe_binary = "  /usr/local/bin/ffprobe  "`,
		"timeout_seconds = 5",
		"[logging]",
		`format = "JSON"`,
		`level = "Debug"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if cfg.Probe.FFprobeBinary != "/usr/local/bin/ffprobe" {
		t.Fatalf("binary not trimmed: %q", cfg.Probe.FFprobeBinary)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
	if cfg.CatalogDatabasePath() != filepath.Join(dir, "catalog", "catalog.db") {
		t.Fatalf("unexpected catalog db path %q", cfg.CatalogDatabasePath())
	}
}

func TestLoadRejectsBadLogging(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for bad log format")
	}
}

func TestSampleConfigMentionsEverySection(t *testing.T) {
	sample := config.SampleConfig()
	for _, section := range []string{"[paths]", "[scan]", "[probe]", "[notes]", "[logging]"} {
		if !strings.Contains(sample, section) {
			t.Fatalf("sample config missing %s", section)
		}
	}
}
