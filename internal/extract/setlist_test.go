package extract

import (
	"strings"
	"testing"
)

func TestSetlistPrefersAnchoredBlock(t *testing.T) {
	blob := strings.Join([]string{
		"Random Preamble Line",
		"",
		"Setlist:",
		"01. Even Flow",
		"02. Black",
		"7:45 Alive",
		"",
		"Lineage: DVD master",
	}, "\n")
	got := Setlist(blob)
	if got != "Even Flow; Black; Alive" {
		t.Fatalf("unexpected setlist %q", got)
	}
}

func TestSetlistDeduplicatesCaseInsensitively(t *testing.T) {
	blob := "Setlist:\nYellow\nyellow\nClocks\n"
	got := Setlist(blob)
	if got != "Yellow; Clocks" {
		t.Fatalf("expected case-insensitive dedup, got %q", got)
	}
}

func TestSetlistFallsBackToWholeBlob(t *testing.T) {
	blob := "Alive\nBlack (live)\nhttp://tracker.example/torrent\nChecksum md5 here\n"
	got := Setlist(blob)
	if got != "Alive; Black" {
		t.Fatalf("unexpected fallback setlist %q", got)
	}
}

func TestSetlistCapsTitles(t *testing.T) {
	var lines []string
	lines = append(lines, "Setlist:")
	for i := 0; i < 250; i++ {
		lines = append(lines, "Song Number "+strings.Repeat("I", i%7+1)+" Take "+strings.Repeat("X", i/7+1))
	}
	got := Setlist(strings.Join(lines, "\n"))
	if count := len(strings.Split(got, "; ")); count > 200 {
		t.Fatalf("setlist exceeds cap: %d entries", count)
	}
}

func TestCleanSongTitle(t *testing.T) {
	cases := []struct {
		line string
		want string
		ok   bool
	}{
		{"01. Even Flow", "Even Flow", true},
		{"[12:34] Black", "Black", true},
		{"5:06 - Jeremy", "Jeremy", true},
		{"Porch (live)", "Porch", true},
		{"Lineage: DVD > MKV", "", false},
		{"www.tracker.example", "", false},
		{"", "", false},
		{"x", "", false},
	}
	for _, tc := range cases {
		got, ok := cleanSongTitle(tc.line)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("cleanSongTitle(%q) = %q, %v; want %q, %v", tc.line, got, ok, tc.want, tc.ok)
		}
	}
}
