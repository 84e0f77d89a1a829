// Package notes locates and decodes the free-form text documents that
// accompany a show folder and concatenates them into a single note blob.
// Files under info-style directories are read first; individual decode
// failures degrade to warnings and never abort the blob.
package notes

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"showscan/internal/textconv"
)

// TextExtensions are the lowercase file extensions treated as note documents.
var TextExtensions = map[string]struct{}{
	".txt":  {},
	".nfo":  {},
	".docx": {},
	".doc":  {},
	".rtf":  {},
}

// infoDirHints mark directories whose documents are ranked before others.
var infoDirHints = map[string]struct{}{
	"info":          {},
	"nfo":           {},
	"notes":         {},
	"docs":          {},
	"documentation": {},
	"about":         {},
}

// IsTextFile reports whether the file name carries a note-document extension.
func IsTextFile(name string) bool {
	_, ok := TextExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

type candidate struct {
	path    string
	relPath string
	score   int
}

// Collect walks the show folder for note documents and returns the combined
// blob plus acquisition warnings. Each chunk is prefixed with its relative
// path so downstream extractors can attribute lines to a source document.
func Collect(ctx context.Context, dir string, conv textconv.Converter) (string, []string) {
	var warnings []string

	candidates := discover(dir)
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].relPath < candidates[j].relPath
	})

	var chunks []string
	for _, cand := range candidates {
		text, err := readDocument(ctx, cand.path, conv)
		if err != nil || strings.TrimSpace(text) == "" {
			warnings = append(warnings, fmt.Sprintf("Could not parse text from %s", filepath.Base(cand.path)))
			continue
		}
		header := fmt.Sprintf("\n---- %s ----\n", cand.relPath)
		chunks = append(chunks, header+strings.TrimSpace(text))
	}
	return strings.TrimSpace(strings.Join(chunks, "\n")), warnings
}

func discover(dir string) []candidate {
	var out []candidate
	_ = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() || !IsTextFile(entry.Name()) {
			return nil
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}
		score := 0
		for _, segment := range strings.Split(filepath.Dir(rel), string(filepath.Separator)) {
			if _, ok := infoDirHints[strings.ToLower(segment)]; ok {
				score = 1
				break
			}
		}
		out = append(out, candidate{path: path, relPath: rel, score: score})
		return nil
	})
	return out
}

func readDocument(ctx context.Context, path string, conv textconv.Converter) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".nfo":
		return readPlainText(path)
	case ".docx":
		return readDocx(path)
	case ".doc", ".rtf":
		if conv == nil {
			return "", textconv.ErrNoConverter
		}
		return conv.ExtractText(ctx, path)
	}
	return "", fmt.Errorf("unsupported document %s", path)
}

// readPlainText reads a text file as UTF-8, falling back to Windows-1252 for
// the legacy .nfo and tracker-note files that predate UTF-8.
func readPlainText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
