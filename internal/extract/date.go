package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	isoDatePattern       = regexp.MustCompile(`\b(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})\b`)
	ambiguousDatePattern = regexp.MustCompile(`\b(\d{1,2})[-/.](\d{1,2})[-/.](\d{2,4})\b`)
	monthNamePattern     = regexp.MustCompile(`(?i)\b([A-Za-z]{3,9})\s+(\d{1,2}),?\s+(\d{4})\b`)
)

// Date scans the text for the first recognizable show date and returns it in
// ISO form (YYYY-MM-DD), or "" when nothing parses.
//
// Patterns are tried in a fixed order: year-first numeric, then ambiguous
// numeric, then month-name. Ambiguous numeric dates take a first field above
// 12 as proof it is the day; otherwise month-first is assumed. Two-digit
// years are normalized into the 2000s.
func Date(text string) string {
	if text == "" {
		return ""
	}
	for _, try := range []func(string) (string, bool){dateFromISO, dateFromAmbiguous, dateFromMonthName} {
		if date, ok := try(text); ok {
			return date
		}
	}
	return ""
}

func dateFromISO(text string) (string, bool) {
	m := isoDatePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return formatDate(year, month, day)
}

func dateFromAmbiguous(text string) (string, bool) {
	m := ambiguousDatePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if year < 100 {
		year += 2000
	}
	var month, day int
	if first > 12 {
		day, month = first, second
	} else {
		month, day = first, second
	}
	return formatDate(year, month, day)
}

func dateFromMonthName(text string) (string, bool) {
	m := monthNamePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	parsed, err := time.Parse("Jan", titleCaseMonth(m[1]))
	if err != nil {
		return "", false
	}
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return formatDate(year, int(parsed.Month()), day)
}

func titleCaseMonth(name string) string {
	if len(name) < 3 {
		return name
	}
	prefix := name[:3]
	out := make([]byte, 3)
	for i := 0; i < 3; i++ {
		c := prefix[i]
		if i == 0 {
			if c >= 'a' && c <= 'z' {
				c -= 'a' - 'A'
			}
		} else if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

func formatDate(year, month, day int) (string, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 1 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}
