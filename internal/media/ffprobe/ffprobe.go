package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index              int    `json:"index"`
	CodecName          string `json:"codec_name"`
	CodecLongName      string `json:"codec_long_name"`
	CodecType          string `json:"codec_type"`
	Duration           string `json:"duration"`
	Width              int    `json:"width"`
	Height             int    `json:"height"`
	DisplayAspectRatio string `json:"display_aspect_ratio"`
	SampleAspectRatio  string `json:"sample_aspect_ratio"`
	AvgFrameRate       string `json:"avg_frame_rate"`
	RFrameRate         string `json:"r_frame_rate"`
	SampleRate         string `json:"sample_rate"`
	Channels           int    `json:"channels"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename   string            `json:"filename"`
	NBStreams  int               `json:"nb_streams"`
	Duration   string            `json:"duration"`
	Size       string            `json:"size"`
	FormatName string            `json:"format_name"`
	Tags       map[string]string `json:"tags"`
}

// Inspect executes ffprobe against the provided path and decodes the JSON
// response. With headerOnly set, only the first ten seconds of the file are
// read, which keeps probing cheap on disc-structure segments.
func Inspect(ctx context.Context, binary string, path string, headerOnly bool) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	args := []string{"-v", "quiet", "-print_format", "json", "-show_format", "-show_streams"}
	if headerOnly {
		args = append(args, "-read_intervals", "%+10")
	}
	args = append(args, "--", path)

	cmd := exec.CommandContext(ctx, binary, args...)
	output, err := cmd.Output()
	if err != nil {
		return Result{}, fmt.Errorf("ffprobe inspect: %w", err)
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// FirstVideoStream returns the first video stream when one exists.
func (r Result) FirstVideoStream() (Stream, bool) {
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, "video") {
			return stream, true
		}
	}
	return Stream{}, false
}

// FirstAudioStream returns the first audio stream when one exists.
func (r Result) FirstAudioStream() (Stream, bool) {
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, "audio") {
			return stream, true
		}
	}
	return Stream{}, false
}

// DurationSeconds returns the container duration in whole seconds, falling
// back to the DURATION format tag, or 0 when unavailable.
func (r Result) DurationSeconds() int64 {
	raw := strings.TrimSpace(r.Format.Duration)
	if raw == "" {
		for key, value := range r.Format.Tags {
			if strings.EqualFold(key, "duration") {
				raw = strings.TrimSpace(value)
				break
			}
		}
	}
	if raw == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || parsed < 0 {
		return 0
	}
	return int64(parsed)
}

// Codec returns the short codec name, falling back to the long name.
func (s Stream) Codec() string {
	if s.CodecName != "" {
		return s.CodecName
	}
	return s.CodecLongName
}

// FrameRate converts the stream frame rate to a three-decimal string.
// Fractional rates such as "30000/1001" are divided out; malformed or
// zero-denominator values yield an empty string. AvgFrameRate is preferred
// over RFrameRate when both are present.
func (s Stream) FrameRate() string {
	if rate := fractionToDecimal(s.AvgFrameRate); rate != "" {
		return rate
	}
	return fractionToDecimal(s.RFrameRate)
}

func fractionToDecimal(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0/0" {
		return ""
	}
	if num, den, found := strings.Cut(raw, "/"); found {
		n, errN := strconv.ParseFloat(num, 64)
		d, errD := strconv.ParseFloat(den, 64)
		if errN != nil || errD != nil || d == 0 {
			return ""
		}
		return strconv.FormatFloat(n/d, 'f', 3, 64)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return ""
	}
	return strconv.FormatFloat(value, 'f', 3, 64)
}
