package deps

import (
	"os"
	"path/filepath"
	"testing"

	"showscan/internal/config"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}

	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}

	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}
}

func TestRequirementCheckTrimsFields(t *testing.T) {
	status := Requirement{
		Name:        "ffprobe",
		Command:     "  \t",
		Description: " media inspector ",
	}.Check()
	if status.Available {
		t.Fatalf("blank command reported available: %#v", status)
	}
	if status.Detail != "command not configured" {
		t.Fatalf("unexpected detail: %q", status.Detail)
	}
	if status.Command != "" || status.Description != "media inspector" {
		t.Fatalf("fields not trimmed: %#v", status)
	}
}

func TestForConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Notes.ConverterBinary = ""

	reqs := ForConfig(&cfg)
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requirements, got %d", len(reqs))
	}
	if reqs[0].Name != "ffprobe" || reqs[0].Optional {
		t.Fatalf("unexpected ffprobe requirement: %#v", reqs[0])
	}
	if !reqs[1].Optional {
		t.Fatalf("document converter should be optional: %#v", reqs[1])
	}

	results := CheckBinaries(reqs)
	if results[1].Available {
		t.Fatalf("unconfigured converter reported available: %#v", results[1])
	}
	if results[1].Detail != "command not configured" {
		t.Fatalf("unexpected detail: %q", results[1].Detail)
	}
}
