package extract

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

type bandPattern struct {
	name       string
	pattern    *regexp.Regexp
	normalized string
}

// bandPatterns holds one word-boundary pattern per canonical name and alias,
// sorted by normalized length descending so multi-word names are preferred
// over their substrings ("Them Crooked Vultures" before "Live").
var bandPatterns = compileBandPatterns()

// canonicalByNormalized maps normalized canonical names for exact path
// segment matching.
var canonicalByNormalized = func() map[string]string {
	m := make(map[string]string, len(bandNames))
	for _, name := range bandNames {
		m[normalizeForMatch(name)] = name
	}
	return m
}()

func compileBandPatterns() []bandPattern {
	names := make([]string, 0, len(bandNames)+len(bandAliases))
	names = append(names, bandNames...)
	for alias := range bandAliases {
		names = append(names, alias)
	}

	prepared := make([]bandPattern, 0, len(names))
	for _, name := range names {
		normalized := normalizeForMatch(name)
		tokens := strings.Split(normalized, " ")
		for i, token := range tokens {
			tokens[i] = regexp.QuoteMeta(token)
		}
		pattern := regexp.MustCompile(`\b` + strings.Join(tokens, `\s+`) + `\b`)
		prepared = append(prepared, bandPattern{name: name, pattern: pattern, normalized: normalized})
	}
	sort.SliceStable(prepared, func(i, j int) bool {
		return len(prepared[i].normalized) > len(prepared[j].normalized)
	})
	return prepared
}

// discInternalNames are directory names that must never be mistaken for an
// artist when falling back to the parent folder.
var discInternalNames = map[string]struct{}{
	"video_ts": {},
	"audio_ts": {},
}

// Artist resolves the artist for a show folder. Confidence order: an exact
// normalized match of any path segment against a canonical name; a
// longest-name-first search across the folder name, parent folder name, and
// notes; finally the parent directory name (unless it is disc-structure
// internal), else the folder's own name.
func Artist(folderPath, blob string) string {
	cleaned := filepath.Clean(folderPath)
	for _, segment := range strings.Split(cleaned, string(filepath.Separator)) {
		if segment == "" {
			continue
		}
		if canonical, ok := canonicalByNormalized[normalizeForMatch(segment)]; ok {
			return canonical
		}
	}

	folderName := filepath.Base(cleaned)
	parentName := filepath.Base(filepath.Dir(cleaned))

	for _, haystack := range []string{
		normalizeForMatch(folderName),
		normalizeForMatch(parentName),
		normalizeForMatch(blob),
	} {
		if found := searchLongest(haystack); found != "" {
			return found
		}
	}

	parent := strings.TrimSpace(parentName)
	if parent != "" && parent != "." && parent != string(filepath.Separator) {
		if _, internal := discInternalNames[strings.ToLower(parent)]; !internal {
			return parent
		}
	}
	return folderName
}

func searchLongest(haystack string) string {
	if haystack == "" {
		return ""
	}
	for _, candidate := range bandPatterns {
		if candidate.pattern.MatchString(haystack) {
			if canonical, ok := bandAliases[candidate.name]; ok {
				return canonical
			}
			return candidate.name
		}
	}
	return ""
}
