package extract

import (
	"strings"
	"testing"
)

func TestLineageInlineKeyValues(t *testing.T) {
	blob := strings.Join([]string{
		"Lineage: Master > DVD > MKV",
		"Taper: Unknown",
		"Source: Sony VX2000",
		"Lineage: Master > DVD > MKV",
	}, "\n")
	got := Lineage(blob)
	if got != "Master > DVD > MKV | Unknown | Sony VX2000" {
		t.Fatalf("unexpected lineage %q", got)
	}
}

func TestLineageAnchoredBlockFallback(t *testing.T) {
	blob := "Lineage\nHi8 master tape\ntransferred via firewire\n\nother text\n"
	got := Lineage(blob)
	if got != "Hi8 master tape | transferred via firewire" {
		t.Fatalf("unexpected lineage %q", got)
	}
}

func TestLineageCapped(t *testing.T) {
	blob := "Lineage: " + strings.Repeat("A", 3000)
	if got := Lineage(blob); len(got) != 2000 {
		t.Fatalf("lineage not capped: %d chars", len(got))
	}
}

func TestLineageEmpty(t *testing.T) {
	if got := Lineage("no relevant keys here"); got != "" {
		t.Fatalf("expected empty lineage, got %q", got)
	}
}

func TestSourceEquipment(t *testing.T) {
	cases := map[string]string{
		"Sony VX2000 > firewire > DVD": "Sony VX2000 > firewire > DVD",
		"shot on minidv then dubbed":   "minidv then dubbed",
		"Hi8 master, transferred":      "Hi8 master",
		"plain digital chain":          "",
		"":                             "",
	}
	for lineage, want := range cases {
		if got := SourceEquipment(lineage); got != want {
			t.Fatalf("SourceEquipment(%q) = %q, want %q", lineage, got, want)
		}
	}
}

func TestRecordingTypePriority(t *testing.T) {
	cases := []struct {
		blob   string
		folder string
		want   string
	}{
		{"proshot broadcast from TV", "f", RecordingProshot},
		{"audience recording, camcorder", "f", RecordingAudience},
		{"documentary with interviews", "f", RecordingDocumentary},
		// Proshot keywords outrank audience keywords in the same text.
		{"soundboard feed mixed with audience cam", "f", RecordingProshot},
		{"", "multicam webcast", RecordingProshot},
		{"nothing indicative", "plain", ""},
	}
	for _, tc := range cases {
		if got := RecordingType(tc.blob, tc.folder); got != tc.want {
			t.Fatalf("RecordingType(%q, %q) = %q, want %q", tc.blob, tc.folder, got, tc.want)
		}
	}
}

func TestGeneration(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"this is the master copy", "Master"},
		{"2nd gen VHS", "2nd Gen"},
		{"3rd generation dub", "3rd Gen"},
		{"gen: 4", "4 Gen"},
		{"generation - 2", "2 Gen"},
		{"no clue", ""},
	}
	for _, tc := range cases {
		if got := Generation(tc.text, "folder"); got != tc.want {
			t.Fatalf("Generation(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}
