package classify

import (
	"os"
	"path/filepath"
	"testing"

	"showscan/internal/testsupport"
)

func TestEvaluateDirectVideoIsShow(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "concert.mkv"), 10)
	if got := Evaluate(dir); got != Show {
		t.Fatalf("expected Show, got %v", got)
	}
}

func TestEvaluateDiscStructureIsShow(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "VIDEO_TS", "VTS_01_1.VOB"), 10)
	if got := Evaluate(dir); got != Show {
		t.Fatalf("expected Show, got %v", got)
	}
}

func TestEvaluateLowercaseDiscStructure(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "video_ts", "vts_01_1.vob"), 10)
	if got := Evaluate(dir); got != Show {
		t.Fatalf("expected Show for lowercase disc structure, got %v", got)
	}
}

func TestEvaluateMultiShowContainerNeverShow(t *testing.T) {
	dir := t.TempDir()
	// Two independent child shows plus the parent's own disc structure:
	// the parent must stay a container.
	testsupport.WriteFile(t, filepath.Join(dir, "show-a", "a.mkv"), 10)
	testsupport.WriteFile(t, filepath.Join(dir, "show-b", "b.mp4"), 10)
	testsupport.WriteFile(t, filepath.Join(dir, "VIDEO_TS", "VTS_01_1.VOB"), 10)
	if got := Evaluate(dir); got != Descend {
		t.Fatalf("expected Descend for multi-show container, got %v", got)
	}
}

func TestEvaluateSingleChildShowParentWithOwnVideoIsShow(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "only-child", "a.mkv"), 10)
	testsupport.WriteFile(t, filepath.Join(dir, "main.mpg"), 10)
	if got := Evaluate(dir); got != Show {
		t.Fatalf("expected Show with single child show, got %v", got)
	}
}

func TestEvaluateExcludedNames(t *testing.T) {
	base := t.TempDir()
	for _, name := range []string{"VIDEO_TS", "info", "Artwork", "extras", "docs", "NFO", "AUDIO_TS"} {
		dir := filepath.Join(base, name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if got := Evaluate(dir); got != Excluded {
			t.Fatalf("expected Excluded for %s, got %v", name, got)
		}
	}
}

func TestEvaluatePlainContainer(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "readme.txt"), 10)
	if got := Evaluate(dir); got != Descend {
		t.Fatalf("expected Descend, got %v", got)
	}
}

func TestLooseVideoFiles(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "stray1.avi"), 5)
	testsupport.WriteFile(t, filepath.Join(dir, "stray2.mov"), 5)
	testsupport.WriteFile(t, filepath.Join(dir, "notes.txt"), 5)
	testsupport.WriteFile(t, filepath.Join(dir, "nested", "deep.mkv"), 5)

	loose := LooseVideoFiles(dir)
	if len(loose) != 2 {
		t.Fatalf("expected 2 loose files, got %v", loose)
	}
	for _, path := range loose {
		if filepath.Dir(path) != dir {
			t.Fatalf("loose file not direct child: %s", path)
		}
	}
}

func TestRepresentativeMediaPrefersDiscGroup(t *testing.T) {
	dir := t.TempDir()
	// Group VTS_01 is larger in total; VTS_02 has a bigger single file.
	testsupport.WriteFile(t, filepath.Join(dir, "VIDEO_TS", "VTS_01_1.VOB"), 600)
	testsupport.WriteFile(t, filepath.Join(dir, "VIDEO_TS", "VTS_01_2.VOB"), 600)
	testsupport.WriteFile(t, filepath.Join(dir, "VIDEO_TS", "VTS_02_1.VOB"), 1000)
	testsupport.WriteFile(t, filepath.Join(dir, "bonus.mkv"), 5000)

	files, container := RepresentativeMedia(dir)
	if container != ".vob" {
		t.Fatalf("expected .vob container, got %q", container)
	}
	if len(files) != 2 {
		t.Fatalf("expected the two VTS_01 segments, got %v", files)
	}
	if filepath.Base(files[0]) != "VTS_01_1.VOB" || filepath.Base(files[1]) != "VTS_01_2.VOB" {
		t.Fatalf("segments out of order: %v", files)
	}
}

func TestRepresentativeMediaLargestVideoFallback(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "small.mp4"), 100)
	testsupport.WriteFile(t, filepath.Join(dir, "nested", "big.mkv"), 900)

	files, container := RepresentativeMedia(dir)
	if len(files) != 1 || filepath.Base(files[0]) != "big.mkv" {
		t.Fatalf("expected largest video, got %v", files)
	}
	if container != ".mkv" {
		t.Fatalf("unexpected container %q", container)
	}
}

func TestRepresentativeMediaEmpty(t *testing.T) {
	dir := t.TempDir()
	files, container := RepresentativeMedia(dir)
	if files != nil || container != "" {
		t.Fatalf("expected empty selection, got %v %q", files, container)
	}
}

func TestDiscSegmentGroupIgnoresNonSegmentFiles(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "VIDEO_TS", "VIDEO_TS.VOB"), 100)
	testsupport.WriteFile(t, filepath.Join(dir, "VIDEO_TS", "VTS_01_0.BUP"), 100)
	if group := DiscSegmentGroup(dir); group != nil {
		t.Fatalf("expected no segment group, got %v", group)
	}
}
