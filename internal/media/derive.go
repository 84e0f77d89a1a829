package media

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var widescreenHint = regexp.MustCompile(`(?i)(16:?9|widescreen)`)

const ratioTolerance = 0.05

// DeriveAspectRatio classifies a stream into a human-readable aspect label.
// Declared display-aspect-ratio tags win; otherwise the width/height ratio is
// matched against 16:9 and 4:3 within a small tolerance. A 4:3 mpeg2 stream
// whose surrounding text mentions widescreen is treated as a letterboxed
// 16:9 transfer rather than native 4:3.
func DeriveAspectRatio(info Info, surroundingText string) string {
	switch info.DAR {
	case "16:9", "1.78:1", "1.7778":
		return "16:9 (native)"
	case "4:3", "1.33:1", "1.3333":
		if letterboxed(info.VideoCodec, surroundingText) {
			return "4:3 (letterboxed 16:9)"
		}
		return "4:3 (native)"
	}

	width, _ := strconv.Atoi(info.Width)
	height, _ := strconv.Atoi(info.Height)
	if width <= 0 || height <= 0 {
		return ""
	}
	ratio := float64(width) / float64(height)
	if math.Abs(ratio-16.0/9.0) < ratioTolerance {
		return "16:9 (native)"
	}
	if math.Abs(ratio-4.0/3.0) < ratioTolerance {
		if letterboxed(info.VideoCodec, surroundingText) {
			return "4:3 (letterboxed 16:9)"
		}
		return "4:3 (native)"
	}
	return ""
}

func letterboxed(codec, surroundingText string) bool {
	return strings.EqualFold(codec, "mpeg2video") && widescreenHint.MatchString(surroundingText)
}

// DeriveTVStandard infers PAL or NTSC from the frame rate. Rates near 25 or
// 50 fps map to PAL, near 30 or 60 fps to NTSC; anything else is unknown.
func DeriveTVStandard(fps string) string {
	value, err := strconv.ParseFloat(strings.TrimSpace(fps), 64)
	if err != nil {
		return ""
	}
	switch {
	case (value >= 24.5 && value <= 25.5) || (value >= 49.0 && value <= 50.5):
		return "PAL"
	case (value >= 29.0 && value <= 30.5) || (value >= 59.0 && value <= 60.5):
		return "NTSC"
	}
	return ""
}

func itoa(value int) string {
	return strconv.Itoa(value)
}

func formatInt64(value int64) string {
	return strconv.FormatInt(value, 10)
}

func parseInt64(raw string) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return value
}
