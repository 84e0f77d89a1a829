package ffprobe

import "testing"

func TestStreamSelection(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{CodecType: "video", CodecName: "mpeg2video"},
			{CodecType: "audio", CodecName: "ac3", Channels: 2},
			{CodecType: "audio", CodecName: "dts", Channels: 6},
		},
	}
	video, ok := result.FirstVideoStream()
	if !ok || video.CodecName != "mpeg2video" {
		t.Fatalf("unexpected video stream: %+v ok=%v", video, ok)
	}
	audio, ok := result.FirstAudioStream()
	if !ok || audio.CodecName != "ac3" {
		t.Fatalf("expected first audio stream, got %+v ok=%v", audio, ok)
	}
}

func TestDurationSeconds(t *testing.T) {
	cases := []struct {
		name   string
		format Format
		want   int64
	}{
		{"container duration", Format{Duration: "123.9"}, 123},
		{"tag fallback", Format{Tags: map[string]string{"DURATION": "45.2"}}, 45},
		{"missing", Format{}, 0},
		{"malformed", Format{Duration: "n/a"}, 0},
		{"negative", Format{Duration: "-5"}, 0},
	}
	for _, tc := range cases {
		result := Result{Format: tc.format}
		if got := result.DurationSeconds(); got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestFrameRate(t *testing.T) {
	cases := []struct {
		avg  string
		r    string
		want string
	}{
		{"25/1", "", "25.000"},
		{"30000/1001", "", "29.970"},
		{"0/0", "25/1", "25.000"},
		{"", "50/2", "25.000"},
		{"24/0", "", ""},
		{"abc", "", ""},
		{"29.97", "", "29.970"},
		{"", "", ""},
	}
	for _, tc := range cases {
		stream := Stream{AvgFrameRate: tc.avg, RFrameRate: tc.r}
		if got := stream.FrameRate(); got != tc.want {
			t.Fatalf("FrameRate(avg=%q r=%q) = %q, want %q", tc.avg, tc.r, got, tc.want)
		}
	}
}

func TestCodecFallsBackToLongName(t *testing.T) {
	stream := Stream{CodecLongName: "MPEG-2 video"}
	if stream.Codec() != "MPEG-2 video" {
		t.Fatalf("unexpected codec %q", stream.Codec())
	}
	stream.CodecName = "mpeg2video"
	if stream.Codec() != "mpeg2video" {
		t.Fatalf("unexpected codec %q", stream.Codec())
	}
}
