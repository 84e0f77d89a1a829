// Package textconv extracts plain text from proprietary document formats by
// shelling out to an external converter. The converter is a port: the scanner
// only depends on the Converter interface, and tests substitute canned
// implementations.
package textconv

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// ErrNoConverter indicates no external converter is configured.
var ErrNoConverter = errors.New("textconv: no converter configured")

// Converter turns a document file into plain text. An empty string with a
// nil error means the document had no extractable text.
type Converter interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// CommandConverter invokes an external binary that writes the converted text
// to stdout, e.g. textutil on macOS (wrapped to emit stdout) or catdoc.
type CommandConverter struct {
	Binary  string
	Timeout time.Duration
}

// ExtractText implements Converter.
func (c CommandConverter) ExtractText(ctx context.Context, path string) (string, error) {
	binary := strings.TrimSpace(c.Binary)
	if binary == "" {
		return "", ErrNoConverter
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	output, err := exec.CommandContext(ctx, binary, path).Output()
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// Nop is a Converter that extracts nothing. Useful when no external binary
// is configured and in tests.
type Nop struct{}

// ExtractText implements Converter.
func (Nop) ExtractText(context.Context, string) (string, error) {
	return "", ErrNoConverter
}
