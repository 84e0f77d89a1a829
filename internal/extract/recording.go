package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// Recording types a show can be classified into. Absence of any keyword
// leaves the type empty.
const (
	RecordingProshot     = "Proshot"
	RecordingAudience    = "Audience"
	RecordingDocumentary = "Documentary"
)

var (
	proshotKeywords     = regexp.MustCompile(`(pro-?shot|broadcast|tv|multicam|soundboard|sbd|webcast|ppv|dvd\s*author)`)
	audienceKeywords    = regexp.MustCompile(`(audience|aud\b|taper|camcorder|handheld|hi8|minidv|\bvx\d{3,4}\b)`)
	documentaryKeywords = regexp.MustCompile(`(documentary|interview|featurette|behind the scenes|bts)`)

	masterPattern     = regexp.MustCompile(`\b(master)\b`)
	ordinalGenPattern = regexp.MustCompile(`\b(\d+)(st|nd|rd|th)\s*gen(eration)?\b`)
	genNumberPattern  = regexp.MustCompile(`\bgen(?:eration)?\s*[:\- ]\s*(\d+)\b`)
)

// RecordingType keyword-classifies the show from the notes and folder name.
// Proshot indicators beat audience indicators beat documentary indicators.
func RecordingType(blob, folderName string) string {
	text := strings.ToLower(blob + "\n" + folderName)
	switch {
	case proshotKeywords.MatchString(text):
		return RecordingProshot
	case audienceKeywords.MatchString(text):
		return RecordingAudience
	case documentaryKeywords.MatchString(text):
		return RecordingDocumentary
	}
	return ""
}

// Generation recognizes master copies, ordinal generations ("2nd gen"), and
// explicit "gen: N" values, in that priority order.
func Generation(blob, folderName string) string {
	text := strings.ToLower(blob + "\n" + folderName)
	if masterPattern.MatchString(text) {
		return "Master"
	}
	if m := ordinalGenPattern.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s%s Gen", m[1], m[2])
	}
	if m := genNumberPattern.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s Gen", m[1])
	}
	return ""
}
