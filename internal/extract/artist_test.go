package extract

import (
	"path/filepath"
	"testing"
)

func TestArtistExactPathSegmentMatch(t *testing.T) {
	path := filepath.Join("/", "volumes", "shows", "pearl-jam", "2003-07-11 The Gorge")
	if got := Artist(path, ""); got != "Pearl Jam" {
		t.Fatalf("unexpected artist %q", got)
	}
}

func TestArtistLongestNameWins(t *testing.T) {
	// "Them Crooked Vultures" contains no other canonical name, but "Live"
	// is a canonical band; the longer match must win over the substring.
	path := "/archive/misc/Them Crooked Vultures Live 2009"
	if got := Artist(path, ""); got != "Them Crooked Vultures" {
		t.Fatalf("unexpected artist %q", got)
	}
}

func TestArtistAliasResolution(t *testing.T) {
	if got := Artist("/archive/misc/RHCP Slane Castle", ""); got != "Red Hot Chili Peppers" {
		t.Fatalf("alias not resolved: %q", got)
	}
}

func TestArtistFromNotesWhenFolderSilent(t *testing.T) {
	got := Artist("/archive/misc/untitled show", "An evening with Soundgarden in Seattle")
	if got != "Soundgarden" {
		t.Fatalf("unexpected artist %q", got)
	}
}

func TestArtistParentFallback(t *testing.T) {
	got := Artist("/archive/Obscure Local Band/1999-01-01 Town Hall", "")
	if got != "Obscure Local Band" {
		t.Fatalf("unexpected artist %q", got)
	}
}

func TestArtistSkipsDiscInternalParent(t *testing.T) {
	got := Artist("/archive/VIDEO_TS/stray", "")
	if got != "stray" {
		t.Fatalf("unexpected artist %q", got)
	}
}

func TestArtistApostropheNormalization(t *testing.T) {
	if got := Artist("/archive/misc/guns n roses tokyo", ""); got != "Guns N' Roses" {
		t.Fatalf("unexpected artist %q", got)
	}
}

func TestEventAndVenue(t *testing.T) {
	blob := "Rockpalast Festival - Grugahalle\nEssen, Germany\n"
	event, venueOverride, hint := EventAndVenue(blob, "")
	if event != "Rockpalast Festival" || venueOverride != "Grugahalle" || hint != HintEventLine {
		t.Fatalf("unexpected result %q %q %q", event, venueOverride, hint)
	}

	// An existing venue is never overridden.
	event, venueOverride, _ = EventAndVenue(blob, "Some Venue")
	if event != "Rockpalast Festival" || venueOverride != "" {
		t.Fatalf("existing venue overridden: %q %q", event, venueOverride)
	}

	// Lines without concert keywords are ignored.
	event, venueOverride, hint = EventAndVenue("Somewhere - Someplace\n", "")
	if event != "" || venueOverride != "" || hint != "" {
		t.Fatalf("unqualified line matched: %q %q %q", event, venueOverride, hint)
	}
}
