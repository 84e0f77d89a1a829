package media

import (
	"context"
	"time"

	"showscan/internal/media/ffprobe"
)

// Prober describes the narrow capability the scanner needs from an external
// media inspector. Implementations must be safe to call with paths that do
// not exist; errors are downgraded to empty results by the caller.
type Prober interface {
	Probe(ctx context.Context, path string, headerOnly bool) (ffprobe.Result, error)
}

// CommandProber runs the real ffprobe binary with a bounded timeout per call.
type CommandProber struct {
	Binary  string
	Timeout time.Duration
}

// Probe implements Prober.
func (p CommandProber) Probe(ctx context.Context, path string, headerOnly bool) (ffprobe.Result, error) {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}
	return ffprobe.Inspect(ctx, p.Binary, path, headerOnly)
}

// Info holds the per-file technical parameters a catalog row records. All
// fields are strings so that "unknown" stays distinguishable from zero.
type Info struct {
	VideoCodec      string
	Width           string
	Height          string
	DurationSec     string
	DAR             string
	SAR             string
	FPS             string
	AudioCodec      string
	AudioChannels   string
	AudioSampleRate string
}

// Describe probes a single file and flattens the result into an Info. Any
// probe failure yields an empty Info, never an error.
func Describe(ctx context.Context, prober Prober, path string, headerOnly bool) Info {
	if prober == nil {
		return Info{}
	}
	result, err := prober.Probe(ctx, path, headerOnly)
	if err != nil {
		return Info{}
	}
	return Summarize(result)
}

// Summarize flattens an ffprobe result into the catalog's Info shape.
func Summarize(result ffprobe.Result) Info {
	var info Info
	if video, ok := result.FirstVideoStream(); ok {
		info.VideoCodec = video.Codec()
		if video.Width > 0 {
			info.Width = itoa(video.Width)
		}
		if video.Height > 0 {
			info.Height = itoa(video.Height)
		}
		info.DAR = video.DisplayAspectRatio
		info.SAR = video.SampleAspectRatio
		info.FPS = video.FrameRate()
	}
	if seconds := result.DurationSeconds(); seconds > 0 {
		info.DurationSec = formatInt64(seconds)
	}
	if audio, ok := result.FirstAudioStream(); ok {
		info.AudioCodec = audio.Codec()
		if audio.Channels > 0 {
			info.AudioChannels = itoa(audio.Channels)
		}
		info.AudioSampleRate = audio.SampleRate
	}
	return info
}

// MergeSegments combines per-segment probe results for a disc-structure
// representative set. Every field keeps the first non-empty value in segment
// order except duration, which is summed across segments.
func MergeSegments(segments []Info) Info {
	var merged Info
	var totalDuration int64
	for _, segment := range segments {
		fillIfEmpty(&merged.VideoCodec, segment.VideoCodec)
		fillIfEmpty(&merged.Width, segment.Width)
		fillIfEmpty(&merged.Height, segment.Height)
		fillIfEmpty(&merged.DAR, segment.DAR)
		fillIfEmpty(&merged.SAR, segment.SAR)
		fillIfEmpty(&merged.FPS, segment.FPS)
		fillIfEmpty(&merged.AudioCodec, segment.AudioCodec)
		fillIfEmpty(&merged.AudioChannels, segment.AudioChannels)
		fillIfEmpty(&merged.AudioSampleRate, segment.AudioSampleRate)
		totalDuration += parseInt64(segment.DurationSec)
	}
	if totalDuration > 0 {
		merged.DurationSec = formatInt64(totalDuration)
	}
	return merged
}

func fillIfEmpty(dst *string, value string) {
	if *dst == "" && value != "" {
		*dst = value
	}
}
