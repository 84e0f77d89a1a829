package media

import (
	"context"
	"errors"
	"testing"

	"showscan/internal/media/ffprobe"
)

type cannedProber struct {
	result ffprobe.Result
	err    error
}

func (p cannedProber) Probe(context.Context, string, bool) (ffprobe.Result, error) {
	return p.result, p.err
}

func TestSummarize(t *testing.T) {
	result := ffprobe.Result{
		Streams: []ffprobe.Stream{
			{
				CodecType:          "video",
				CodecName:          "mpeg2video",
				Width:              720,
				Height:             576,
				DisplayAspectRatio: "4:3",
				AvgFrameRate:       "25/1",
			},
			{CodecType: "audio", CodecName: "ac3", Channels: 2, SampleRate: "48000"},
		},
		Format: ffprobe.Format{Duration: "3600.5"},
	}
	info := Summarize(result)
	if info.VideoCodec != "mpeg2video" || info.Width != "720" || info.Height != "576" {
		t.Fatalf("unexpected video fields: %+v", info)
	}
	if info.FPS != "25.000" || info.DurationSec != "3600" {
		t.Fatalf("unexpected fps/duration: %+v", info)
	}
	if info.AudioCodec != "ac3" || info.AudioChannels != "2" || info.AudioSampleRate != "48000" {
		t.Fatalf("unexpected audio fields: %+v", info)
	}
}

func TestDescribeSwallowsProbeFailure(t *testing.T) {
	info := Describe(context.Background(), cannedProber{err: errors.New("exec failed")}, "/missing", false)
	if info != (Info{}) {
		t.Fatalf("expected empty info on probe failure, got %+v", info)
	}
}

func TestMergeSegmentsFirstNonEmptyWinsAndDurationSums(t *testing.T) {
	segments := []Info{
		{DurationSec: "100", FPS: "25.000"},
		{VideoCodec: "mpeg2video", Width: "720", Height: "576", DurationSec: "200", FPS: "29.970"},
		{AudioCodec: "ac3", DurationSec: "50"},
	}
	merged := MergeSegments(segments)
	if merged.VideoCodec != "mpeg2video" || merged.Width != "720" {
		t.Fatalf("first-non-empty merge failed: %+v", merged)
	}
	if merged.FPS != "25.000" {
		t.Fatalf("expected first segment fps to win, got %q", merged.FPS)
	}
	if merged.DurationSec != "350" {
		t.Fatalf("expected summed duration 350, got %q", merged.DurationSec)
	}
}

func TestDeriveAspectRatio(t *testing.T) {
	cases := []struct {
		name string
		info Info
		text string
		want string
	}{
		{"dar 16:9", Info{DAR: "16:9"}, "", "16:9 (native)"},
		{"dar 4:3 plain", Info{DAR: "4:3", VideoCodec: "h264"}, "", "4:3 (native)"},
		{
			"dar 4:3 mpeg2 widescreen note",
			Info{DAR: "4:3", VideoCodec: "mpeg2video"},
			"Transferred from a widescreen broadcast",
			"4:3 (letterboxed 16:9)",
		},
		{"dimensions 16:9", Info{Width: "1920", Height: "1080"}, "", "16:9 (native)"},
		{"dimensions 4:3", Info{Width: "640", Height: "480"}, "", "4:3 (native)"},
		{
			"dimensions 4:3 letterboxed",
			Info{Width: "720", Height: "540", VideoCodec: "mpeg2video"},
			"16x9 anamorphic? 16:9 flag in folder",
			"4:3 (letterboxed 16:9)",
		},
		{"unknown", Info{Width: "100", Height: "41"}, "", ""},
		{"no dimensions", Info{}, "", ""},
	}
	for _, tc := range cases {
		if got := DeriveAspectRatio(tc.info, tc.text); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestDeriveTVStandard(t *testing.T) {
	cases := map[string]string{
		"25.000": "PAL",
		"50.000": "PAL",
		"29.970": "NTSC",
		"59.940": "NTSC",
		"23.976": "",
		"":       "",
		"bogus":  "",
	}
	for fps, want := range cases {
		if got := DeriveTVStandard(fps); got != want {
			t.Fatalf("DeriveTVStandard(%q) = %q, want %q", fps, got, want)
		}
	}
}
