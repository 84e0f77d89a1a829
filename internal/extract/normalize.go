package extract

import (
	"regexp"
	"strings"
)

var (
	normApostrophes = regexp.MustCompile("[’'`]")
	normPunctuation = regexp.MustCompile(`[\s\-_.,:;!/\\]+`)
	multiSpace      = regexp.MustCompile(`\s{2,}`)
)

// normalizeForMatch lowercases, strips apostrophes, and collapses punctuation
// and whitespace runs to single spaces so "Guns N' Roses", "guns-n-roses",
// and "Guns N Roses" all compare equal.
func normalizeForMatch(s string) string {
	s = normApostrophes.ReplaceAllString(strings.ToLower(s), "")
	s = normPunctuation.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// nonBlankLines trims every line, drops blanks, and collapses interior
// whitespace runs.
func nonBlankLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, multiSpace.ReplaceAllString(line, " "))
	}
	return out
}

// sectionByAnchor returns the lines following the first line matching the
// anchor, up to the next blank line. Blank lines before any content are
// skipped.
func sectionByAnchor(text string, anchor *regexp.Regexp) []string {
	if text == "" {
		return nil
	}
	var collected []string
	grabbing := false
	for _, line := range strings.Split(text, "\n") {
		if anchor.MatchString(strings.TrimSpace(line)) {
			grabbing = true
			continue
		}
		if !grabbing {
			continue
		}
		if strings.TrimSpace(line) == "" {
			if len(collected) > 0 {
				break
			}
			continue
		}
		collected = append(collected, strings.TrimRight(line, " \t"))
	}
	return collected
}

// firstLineAfterAnchor finds the first non-blank line within a few lines of
// an anchor match.
func firstLineAfterAnchor(text string, anchor *regexp.Regexp) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !anchor.MatchString(strings.TrimSpace(line)) {
			continue
		}
		limit := i + 6
		if limit > len(lines) {
			limit = len(lines)
		}
		for j := i + 1; j < limit; j++ {
			if candidate := strings.TrimSpace(lines[j]); candidate != "" {
				return candidate
			}
		}
	}
	return ""
}
