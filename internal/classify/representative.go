package classify

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	discSegmentName = regexp.MustCompile(`(?i)^(VTS_\d{2})_(\d+)\.VOB$`)
)

// RepresentativeMedia chooses the file set that characterizes a show folder:
// the dominant disc-structure segment group when present, else the single
// largest video file found anywhere under the folder. The returned container
// is the lowercase extension of the chosen media, empty when nothing
// qualifies.
func RepresentativeMedia(dir string) (files []string, container string) {
	if group := DiscSegmentGroup(dir); len(group) > 0 {
		return group, ".vob"
	}
	best, bestSize := "", int64(0)
	_ = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil || entry.IsDir() || !IsVideoFile(entry.Name()) {
			return nil
		}
		info, infoErr := entry.Info()
		if infoErr != nil {
			return nil
		}
		if info.Size() > bestSize {
			best, bestSize = path, info.Size()
		}
		return nil
	})
	if best == "" {
		return nil, ""
	}
	return []string{best}, strings.ToLower(filepath.Ext(best))
}

// DiscSegmentGroup finds the disc structure under the folder and returns the
// segment group with the greatest cumulative byte size, ordered by segment
// index. Segments group by their two-digit structural key (VTS_01, VTS_02,
// ...). Empty when no disc structure exists.
func DiscSegmentGroup(dir string) []string {
	discDir := findDiscDir(dir)
	if discDir == "" {
		return nil
	}

	type segment struct {
		path  string
		index int
		size  int64
	}
	groups := make(map[string][]segment)
	entries, err := os.ReadDir(discDir)
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := discSegmentName.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		info, infoErr := entry.Info()
		if infoErr != nil {
			continue
		}
		index, _ := strconv.Atoi(m[2])
		key := strings.ToUpper(m[1])
		groups[key] = append(groups[key], segment{
			path:  filepath.Join(discDir, entry.Name()),
			index: index,
			size:  info.Size(),
		})
	}

	bestKey, bestTotal := "", int64(-1)
	for key, segments := range groups {
		var total int64
		for _, seg := range segments {
			total += seg.size
		}
		// Lexicographic key on ties keeps the choice stable across runs.
		if total > bestTotal || (total == bestTotal && key < bestKey) {
			bestKey, bestTotal = key, total
		}
	}
	if bestKey == "" {
		return nil
	}

	chosen := groups[bestKey]
	sort.Slice(chosen, func(i, j int) bool { return chosen[i].index < chosen[j].index })
	out := make([]string, 0, len(chosen))
	for _, seg := range chosen {
		out = append(out, seg.path)
	}
	return out
}

// findDiscDir locates the first VIDEO_TS directory anywhere under dir.
func findDiscDir(dir string) string {
	var found string
	_ = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() && strings.EqualFold(entry.Name(), "VIDEO_TS") {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	return found
}
