package extract

import (
	"regexp"
	"strings"
)

// HintEventLine is recorded when the event refinement fires.
const HintEventLine = "evt:eventline"

var (
	concertKeyword = regexp.MustCompile(`(?i)(concert|festival|live|rockpalast|tour|show)`)
	dashSeparator  = regexp.MustCompile(`\s[–-]\s`)
)

// EventAndVenue scans the notes for a strong "<Event> – <Venue>" line
// qualified by a concert-related keyword. The event portion always wins;
// the venue portion is only offered as an override when the location cascade
// produced no venue.
func EventAndVenue(blob, existingVenue string) (event, venueOverride, hint string) {
	if blob == "" {
		return "", "", ""
	}
	for _, line := range strings.Split(blob, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !concertKeyword.MatchString(line) || !dashSeparator.MatchString(line) {
			continue
		}
		m := eventVenueLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		event = strings.TrimSpace(m[1])
		venue := strings.TrimSpace(m[2])
		if existingVenue == "" {
			venueOverride = venue
		}
		return event, venueOverride, HintEventLine
	}
	return "", "", ""
}
