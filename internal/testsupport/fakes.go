package testsupport

import (
	"context"

	"showscan/internal/media/ffprobe"
)

// StaticProber returns the same probe result for every path.
type StaticProber struct {
	Result ffprobe.Result
	Err    error
}

func (p StaticProber) Probe(context.Context, string, bool) (ffprobe.Result, error) {
	return p.Result, p.Err
}

// StaticConverter returns canned text for proprietary document formats.
type StaticConverter struct {
	Text string
	Err  error
}

func (c StaticConverter) ExtractText(context.Context, string) (string, error) {
	return c.Text, c.Err
}
