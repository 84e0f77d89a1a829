package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"showscan/internal/testsupport"
)

func writeTestConfig(t *testing.T, base string) string {
	t.Helper()
	cfgPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf("[paths]\ncatalog_dir = %q\nlog_dir = %q\n\n[logging]\nlevel = \"error\"\n",
		filepath.Join(base, "catalog"), filepath.Join(base, "logs"))
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath
}

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("command %v: %v\n%s", args, err, buf.String())
	}
	return buf.String()
}

func TestScanListExportEndToEnd(t *testing.T) {
	base := t.TempDir()
	cfgPath := writeTestConfig(t, base)

	root := filepath.Join(base, "media")
	show := filepath.Join(root, "Tool - Grand Rapids")
	testsupport.WriteFile(t, filepath.Join(show, "concert.mkv"), 1024)
	testsupport.WriteTextFile(t, filepath.Join(show, "notes.txt"), "Tool\n2003-07-18\nGrand Rapids, MI\n")

	out := runCommand(t, "--config", cfgPath, "scan", "--no-media", "--checksums", root)
	if !strings.Contains(out, "Cataloged 1 shows") {
		t.Fatalf("unexpected scan output: %s", out)
	}

	out = runCommand(t, "--config", cfgPath, "catalog", "list")
	if !strings.Contains(out, "Tool") || !strings.Contains(out, "2003-07-18") {
		t.Fatalf("unexpected list output: %s", out)
	}

	exportPath := filepath.Join(base, "shows.csv")
	runCommand(t, "--config", cfgPath, "catalog", "export", "-o", exportPath)

	f, err := os.Open(exportPath)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}
	if records[0][0] != "ShowID" || records[0][1] != "Artist" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	if records[1][1] != "Tool" || records[1][2] != "2003-07-18" {
		t.Fatalf("unexpected row: %v", records[1])
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "config.toml")

	runCommand(t, "config", "init", "--path", target)
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config missing: %v", err)
	}

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"config", "init", "--path", target})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error when config already exists")
	}

	runCommand(t, "config", "init", "--path", target, "--overwrite")
}
