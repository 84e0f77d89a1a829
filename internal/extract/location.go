package extract

import (
	"regexp"
	"strings"
)

// Location hint tags recorded as audit warnings when a tier fires.
const (
	HintLocationComma       = "loc:comma"
	HintLocationStack       = "loc:stack"
	HintLocationEventLine   = "loc:eventline"
	HintLocationCityRegion  = "loc:cityregion"
	HintLocationCityCountry = "loc:citycountry"
	HintLocationFolder      = "loc:folder"
)

// LocationResult carries whatever the cascade could infer. Fields are
// independently optional; Hint names the tier that produced the result.
type LocationResult struct {
	Venue    string
	City     string
	Country  string
	Festival string
	Hint     string
}

var (
	commaSplit          = regexp.MustCompile(`\s*,\s*`)
	cityUpperRegionTail = regexp.MustCompile(`(.+?)\s+([A-Z]{2,3})$`)
	cityRegionTail      = regexp.MustCompile(`(.+?)\s*[-,]\s*([A-Za-z]{2,3})$`)
	eventVenueLine      = regexp.MustCompile(`(.+?)\s+[–-]\s+(.+)$`)
	eventNextLineTail   = regexp.MustCompile(`(.+?)\s*[,–-]\s*([A-Za-z]{2,3})$`)
	folderDatePrefix    = regexp.MustCompile(`\b\d{4}[-_]\d{2}[-_]\d{2}\b\s+(.+)`)
	folderSeparators    = regexp.MustCompile(`[,\-|–—]\s*`)
	festivalKeyword     = regexp.MustCompile(`(?i)\b(Festival|Rockpalast|Lollapalooza|Glastonbury|Reading|Leeds|Bonnaroo|Primavera|Big Day Out|Splendour in the Grass)\b`)
)

// Location infers venue, city, country, and festival from free-form notes
// with the folder name as fallback. Tiers run in a fixed order and the first
// tier producing anything wins; only the last-resort festival scan can run
// with an empty location.
func Location(blob, folderName string) LocationResult {
	lines := nonBlankLines(blob)

	strategies := []func() (LocationResult, bool){
		func() (LocationResult, bool) { return locationFromCommaLine(lines) },
		func() (LocationResult, bool) { return locationFromStack(lines) },
		func() (LocationResult, bool) { return locationFromEventLine(lines) },
		func() (LocationResult, bool) { return locationFromLoneCityLine(lines) },
		func() (LocationResult, bool) { return locationFromFolderName(folderName) },
	}
	for _, strategy := range strategies {
		if result, ok := strategy(); ok {
			return result
		}
	}

	var result LocationResult
	if m := festivalKeyword.FindStringSubmatch(blob); m != nil {
		result.Festival = m[1]
	}
	return result
}

// Tier 1: a single comma-separated line ending in a country or region,
// "Venue, City[, Region], Country".
func locationFromCommaLine(lines []string) (LocationResult, bool) {
	for _, line := range lines {
		parts := splitNonEmpty(commaSplit, line)
		if len(parts) < 2 {
			continue
		}
		last := parts[len(parts)-1]
		country, known := resolveCountry(last)
		if !known {
			continue
		}
		result := LocationResult{Country: country, Hint: HintLocationComma}
		if len(parts) >= 3 {
			mid := parts[len(parts)-2]
			if m := cityUpperRegionTail.FindStringSubmatch(mid); m != nil {
				if _, ok := countryForRegion(strings.ToUpper(m[2])); ok {
					result.City = strings.TrimSpace(m[1])
				} else {
					result.City = mid
				}
			} else {
				result.City = mid
			}
			result.Venue = strings.TrimSpace(strings.Join(parts[:len(parts)-2], ", "))
		} else {
			result.City = parts[0]
		}
		return result, true
	}
	return LocationResult{}, false
}

// Tier 2: three consecutive non-blank lines forming Venue / City[-Region] /
// Country.
func locationFromStack(lines []string) (LocationResult, bool) {
	for i := 0; i+2 < len(lines); i++ {
		country, known := resolveCountry(lines[i+2])
		if !known {
			continue
		}
		result := LocationResult{
			Venue:   lines[i],
			City:    lines[i+1],
			Country: country,
			Hint:    HintLocationStack,
		}
		if m := cityRegionTail.FindStringSubmatch(lines[i+1]); m != nil {
			if _, ok := countryForRegion(strings.ToUpper(m[2])); ok {
				result.City = strings.TrimSpace(m[1])
			}
		}
		return result, true
	}
	return LocationResult{}, false
}

// Tier 3: an "Event – Venue" line immediately followed by a City[, Region or
// Country] line.
func locationFromEventLine(lines []string) (LocationResult, bool) {
	for i := 0; i+1 < len(lines); i++ {
		m := eventVenueLine.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		event := strings.TrimSpace(m[1])
		venue := strings.TrimSpace(m[2])
		next := lines[i+1]

		if tail := eventNextLineTail.FindStringSubmatch(next); tail != nil {
			if country, ok := countryForRegion(strings.ToUpper(tail[2])); ok {
				return LocationResult{
					Venue:    venue,
					City:     strings.TrimSpace(tail[1]),
					Country:  country,
					Festival: event,
					Hint:     HintLocationEventLine,
				}, true
			}
		}
		parts := splitNonEmpty(commaSplit, next)
		if len(parts) == 2 {
			if country, known := resolveCountry(parts[1]); known {
				return LocationResult{
					Venue:    venue,
					City:     parts[0],
					Country:  country,
					Festival: event,
					Hint:     HintLocationEventLine,
				}, true
			}
		}
	}
	return LocationResult{}, false
}

// Tier 4: a lone "City - Region" or "City, Country" line.
func locationFromLoneCityLine(lines []string) (LocationResult, bool) {
	for _, line := range lines {
		if m := cityRegionTail.FindStringSubmatch(line); m != nil {
			if country, ok := countryForRegion(strings.ToUpper(m[2])); ok {
				return LocationResult{
					City:    strings.TrimSpace(m[1]),
					Country: country,
					Hint:    HintLocationCityRegion,
				}, true
			}
		}
		parts := splitNonEmpty(commaSplit, line)
		if len(parts) == 2 {
			if country, known := resolveCountry(parts[1]); known {
				return LocationResult{
					City:    parts[0],
					Country: country,
					Hint:    HintLocationCityCountry,
				}, true
			}
		}
	}
	return LocationResult{}, false
}

// Tier 5: decompose the folder name, stripping a leading date token and
// splitting on flexible separators into venue/city[/country].
func locationFromFolderName(folderName string) (LocationResult, bool) {
	candidate := folderName
	if m := folderDatePrefix.FindStringSubmatch(folderName); m != nil {
		candidate = strings.TrimSpace(m[1])
	}
	parts := splitNonEmpty(folderSeparators, candidate)
	switch {
	case len(parts) >= 3:
		return LocationResult{Venue: parts[0], City: parts[1], Country: parts[2], Hint: HintLocationFolder}, true
	case len(parts) == 2:
		return LocationResult{Venue: parts[0], City: parts[1], Hint: HintLocationFolder}, true
	}
	return LocationResult{}, false
}

// resolveCountry accepts either a country name or a region abbreviation and
// returns the country it implies.
func resolveCountry(token string) (string, bool) {
	if isCountry(token) {
		return token, true
	}
	if country, ok := countryForRegion(strings.ToUpper(token)); ok {
		return country, true
	}
	return "", false
}

func splitNonEmpty(re *regexp.Regexp, s string) []string {
	var out []string
	for _, part := range re.Split(s, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
