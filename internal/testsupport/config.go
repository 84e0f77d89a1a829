package testsupport

import (
	"path/filepath"
	"testing"

	"showscan/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
// Media probing is disabled so tests never shell out to ffprobe.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.CatalogDir = filepath.Join(base, "catalog")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Probe.SkipMedia = true
	return &cfg
}
