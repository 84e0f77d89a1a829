package extract

import (
	"regexp"
	"strings"
)

// lineageMaxChars caps the lineage text stored on a row.
const lineageMaxChars = 2000

var (
	lineageInline  = regexp.MustCompile(`(?im)^(lineage|source|taper|gen(?:eration)?)\s*[:\-]\s*(.+)$`)
	lineageAnchor  = regexp.MustCompile(`(?i)^(lineage|source|taper|gen|generation)\s*:?\s*$`)
	equipmentToken = regexp.MustCompile(`(?i)(mini\s*dv|minidv|hi8|betacam|vx\d{3,4}|xl1|xl2|hd pvr|hvr|sony|panasonic|canon)[^\n,;]*`)
)

// Lineage extracts the recording lineage chain from the notes. Inline
// "Lineage:/Source:/Taper:/Gen:" values come first; failing that, an anchored
// block; failing that, the first non-blank line after a bare anchor.
// Pieces are deduplicated case-insensitively and joined with " | ".
func Lineage(blob string) string {
	if blob == "" {
		return ""
	}

	var pieces []string
	for _, m := range lineageInline.FindAllStringSubmatch(blob, -1) {
		if value := strings.TrimSpace(m[2]); value != "" {
			pieces = append(pieces, value)
		}
	}
	if len(pieces) == 0 {
		for _, line := range sectionByAnchor(blob, lineageAnchor) {
			if value := tidyWhitespace(line); value != "" {
				pieces = append(pieces, value)
			}
		}
	}
	if len(pieces) == 0 {
		if line := firstLineAfterAnchor(blob, lineageAnchor); line != "" {
			pieces = append(pieces, tidyWhitespace(line))
		}
	}

	seen := make(map[string]struct{}, len(pieces))
	var out []string
	for _, piece := range pieces {
		key := strings.ToLower(piece)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, piece)
	}
	return truncate(strings.Join(out, " | "), lineageMaxChars)
}

// SourceEquipment pulls the first camera or deck mention out of the lineage
// text, trailing description included.
func SourceEquipment(lineage string) string {
	if lineage == "" {
		return ""
	}
	if m := equipmentToken.FindString(lineage); m != "" {
		return strings.TrimSpace(m)
	}
	return ""
}

func tidyWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
