package volume

import (
	"strings"
	"testing"
)

func TestLookupNeverEmpty(t *testing.T) {
	dir := t.TempDir()
	info := Lookup(dir)
	if info.Label == "" {
		t.Fatal("expected a label")
	}
	if info.DeviceID == "" {
		t.Fatal("expected a device identifier")
	}
}

func TestLookupStableAcrossCalls(t *testing.T) {
	dir := t.TempDir()
	first := Lookup(dir)
	second := Lookup(dir)
	if first != second {
		t.Fatalf("lookup not stable: %+v vs %+v", first, second)
	}
}

func TestLookupMissingPathDegrades(t *testing.T) {
	info := Lookup("/no/such/volume/root")
	if info.Label != "root" {
		t.Fatalf("unexpected label %q", info.Label)
	}
	if info.DeviceID == "" {
		t.Fatal("expected fallback identifier")
	}
}

func TestPathIdentifierShape(t *testing.T) {
	id := pathIdentifier("/some/resolved/path")
	if len(id) != 12 {
		t.Fatalf("expected 12 hex chars, got %q", id)
	}
	if strings.ToLower(id) != id {
		t.Fatalf("expected lowercase hex, got %q", id)
	}
}
