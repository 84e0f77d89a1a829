package extract

import (
	"regexp"
	"strings"
)

// setlistMaxTitles caps the number of songs a single setlist may record.
const setlistMaxTitles = 200

var (
	setlistAnchor = regexp.MustCompile(`(?i)^(setlist|tracklist|tracks|songs)\s*:?\s*$`)
	nonSongHints  = regexp.MustCompile(`(?i)(lineage|taper|venue|location|source|video|audio|menu|chapters|checksum|md5|author|www|http|https|torrent|poster)`)
	songLine      = regexp.MustCompile(`^\s*(?:\d{1,2}\s*[.)-]\s*|\[\d{1,2}:\d{2}\]\s*|~?\d{1,2}:\d{2}\s*|-?\s*)?([A-Za-z][A-Za-z0-9&/’'()\-. ]{2,})\s*$`)
	timestampLine = regexp.MustCompile(`^\s*(?:\[\s*\d{1,2}:\d{2}\s*\]|\d{1,2}:\d{2})\s*[-–:]?\s*(.+)$`)
	trailingTags  = regexp.MustCompile(`(?i)\s*\((live|cut|jam|tape|alt\.? mix|remix|reprise|acoustic|intro|outro)\)\s*$`)
	letterRun     = regexp.MustCompile(`[A-Za-z]`)
)

// Setlist extracts an ordered, deduplicated song list from the notes and
// joins it with "; ". An anchored setlist/tracklist block is preferred; when
// none exists the whole blob is scanned line by line.
func Setlist(blob string) string {
	if blob == "" {
		return ""
	}
	candidates := sectionByAnchor(blob, setlistAnchor)
	if len(candidates) == 0 {
		candidates = strings.Split(blob, "\n")
	}

	var titles []string
	seen := make(map[string]struct{})
	for _, line := range candidates {
		title, ok := cleanSongTitle(line)
		if !ok {
			continue
		}
		key := strings.ToLower(title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		titles = append(titles, title)
		if len(titles) == setlistMaxTitles {
			break
		}
	}
	return strings.Join(titles, "; ")
}

// cleanSongTitle decides whether a line is a song title and normalizes it.
// Timestamp-prefixed lines are accepted outright; bare lines must not look
// like metadata and must match the song-title shape. Trailing performance
// annotations are stripped.
func cleanSongTitle(line string) (string, bool) {
	raw := strings.TrimSpace(line)
	if raw == "" {
		return "", false
	}

	if m := timestampLine.FindStringSubmatch(raw); m != nil {
		title := tidyTitle(m[1])
		if countLetters(title) >= 2 {
			return title, true
		}
		return "", false
	}

	if nonSongHints.MatchString(raw) {
		return "", false
	}
	m := songLine.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	title := trailingTags.ReplaceAllString(strings.TrimSpace(m[1]), "")
	title = tidyTitle(title)
	if countLetters(title) < 2 {
		return "", false
	}
	return title, true
}

func tidyTitle(title string) string {
	title = multiSpace.ReplaceAllString(strings.TrimSpace(title), " ")
	return strings.Trim(title, " .-")
}

func countLetters(s string) int {
	return len(letterRun.FindAllString(s, -1))
}
