// Package classify decides what a directory is: a show folder holding one
// concert recording, a container to keep descending into, or an excluded
// internal directory. It also selects the representative media set that
// characterizes a show's technical parameters.
//
// Decisions are pure functions of the directory listing; any filesystem
// error during evaluation downgrades the directory to "not a show" so a
// single bad folder never aborts a walk.
package classify

import (
	"os"
	"path/filepath"
	"strings"
)

// Decision is the per-directory walk outcome.
type Decision int

const (
	// Descend means the directory is a container; keep walking children.
	Descend Decision = iota
	// Show means the directory directly holds one concert recording and is
	// terminal: children are never descended.
	Show
	// Excluded means the directory is disc-structure internal or an
	// info/artwork folder and must not be descended or counted.
	Excluded
)

// videoExtensions are the recognized video file extensions (lowercase).
var videoExtensions = map[string]struct{}{
	".vob": {}, ".ts": {}, ".mpg": {}, ".mpeg": {}, ".m2ts": {},
	".mp4": {}, ".m4v": {}, ".avi": {}, ".mov": {}, ".mkv": {}, ".wmv": {},
}

// excludedDirNames is the fixed denylist of directory names never descended
// into: disc-structure internals and auxiliary folders.
var excludedDirNames = map[string]struct{}{
	"video_ts": {}, "audio_ts": {},
	"info": {}, "nfo": {}, "docs": {}, "artwork": {}, "extras": {},
}

// IsVideoFile reports whether the name carries a recognized video extension.
func IsVideoFile(name string) bool {
	_, ok := videoExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// IsExcludedDirName reports whether the directory name is on the denylist.
func IsExcludedDirName(name string) bool {
	_, ok := excludedDirNames[strings.ToLower(name)]
	return ok
}

// Evaluate classifies a directory.
//
// A directory is a show when it directly contains a disc structure with at
// least one qualifying segment, or directly contains a recognized video
// file. A directory with two or more child directories that independently
// look like shows is always a container, even when it also carries its own
// disc structure; multi-show containers take precedence over promoting the
// parent.
func Evaluate(dir string) Decision {
	if IsExcludedDirName(filepath.Base(dir)) {
		return Excluded
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Descend
	}

	childShows := 0
	for _, entry := range entries {
		if !entry.IsDir() || IsExcludedDirName(entry.Name()) {
			continue
		}
		if childLooksLikeShow(filepath.Join(dir, entry.Name())) {
			childShows++
			if childShows >= 2 {
				return Descend
			}
		}
	}

	if hasDiscStructure(dir, entries) {
		return Show
	}
	if hasDirectVideoFiles(entries) {
		return Show
	}
	return Descend
}

// LooseVideoFiles lists directly-contained video files of a container
// directory, in listing order. The scanner promotes each to a synthetic
// one-file show so content is never silently dropped.
func LooseVideoFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, entry := range entries {
		if entry.IsDir() || !IsVideoFile(entry.Name()) {
			continue
		}
		out = append(out, filepath.Join(dir, entry.Name()))
	}
	return out
}

// hasDiscStructure reports whether the directory directly contains a
// VIDEO_TS child with at least one .vob segment, case-insensitive.
func hasDiscStructure(dir string, entries []os.DirEntry) bool {
	for _, entry := range entries {
		if !entry.IsDir() || !strings.EqualFold(entry.Name(), "VIDEO_TS") {
			continue
		}
		segments, err := os.ReadDir(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		for _, segment := range segments {
			if !segment.IsDir() && strings.EqualFold(filepath.Ext(segment.Name()), ".vob") {
				return true
			}
		}
	}
	return false
}

func hasDirectVideoFiles(entries []os.DirEntry) bool {
	for _, entry := range entries {
		if !entry.IsDir() && IsVideoFile(entry.Name()) {
			return true
		}
	}
	return false
}

// childLooksLikeShow applies the same qualification test to a child
// directory: its own disc structure or a direct video file.
func childLooksLikeShow(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	if hasDiscStructure(dir, entries) {
		return true
	}
	return hasDirectVideoFiles(entries)
}
