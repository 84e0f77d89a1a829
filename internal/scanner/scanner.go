package scanner

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"showscan/internal/catalog"
	"showscan/internal/classify"
	"showscan/internal/config"
	"showscan/internal/logging"
	"showscan/internal/media"
	"showscan/internal/textconv"
	"showscan/internal/volume"
)

// Options selects what a scan run covers and how much work it does.
type Options struct {
	Roots      []string
	HeaderOnly bool
	SkipMedia  bool
	Checksums  bool
	DriveID    bool
}

// Scanner orchestrates one catalog scan. Prober and Converter default to
// subprocess-backed implementations from the configuration; tests swap in
// fakes.
type Scanner struct {
	Prober    media.Prober
	Converter textconv.Converter

	cfg    *config.Config
	logger *slog.Logger
}

// New builds a scanner from configuration. A nil logger disables logging.
func New(cfg *config.Config, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = logging.NewNop()
	}
	var conv textconv.Converter = textconv.Nop{}
	if cfg.Notes.ConverterBinary != "" {
		conv = &textconv.CommandConverter{
			Binary:  cfg.Notes.ConverterBinary,
			Timeout: time.Duration(cfg.Notes.TimeoutSeconds) * time.Second,
		}
	}
	return &Scanner{
		Prober: &media.CommandProber{
			Binary:  cfg.Probe.FFprobeBinary,
			Timeout: time.Duration(cfg.Probe.TimeoutSeconds) * time.Second,
		},
		Converter: conv,
		cfg:       cfg,
		logger:    logging.NewComponentLogger(logger, "scanner"),
	}
}

// Result is the outcome of one scan run.
type Result struct {
	RunID          string
	Rows           []catalog.Row
	FoldersScanned int
	SkippedRoots   []string
}

// runState carries the per-run bookkeeping shared across roots.
type runState struct {
	rows             []catalog.Row
	seenIDs          map[string]bool
	checksumToShowID map[string]string
	volumes          map[string]volume.Info
	folders          int
}

// Run walks every root and returns the assembled, sorted rows. It fails
// only when no root is usable.
func (s *Scanner) Run(ctx context.Context, opts Options) (*Result, error) {
	st := &runState{
		seenIDs:          make(map[string]bool),
		checksumToShowID: make(map[string]string),
		volumes:          make(map[string]volume.Info),
	}

	res := &Result{RunID: uuid.NewString()}
	usable := 0
	for _, root := range opts.Roots {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			s.logger.Warn("skipping unusable root", logging.String("root", root))
			res.SkippedRoots = append(res.SkippedRoots, root)
			continue
		}
		usable++
		if err := s.walkRoot(ctx, root, st, opts); err != nil {
			return nil, err
		}
	}
	if usable == 0 {
		return nil, errNoUsableRoots(opts.Roots)
	}

	sortRows(st.rows)
	res.Rows = st.rows
	res.FoldersScanned = st.folders
	s.logger.Info("scan complete",
		logging.String("run_id", res.RunID),
		logging.Int("rows", len(res.Rows)),
		logging.Int("folders", res.FoldersScanned))
	return res, nil
}

// walkRoot performs a pre-order walk with lexicographic child order.
// Shows are terminal: children of a show directory are never visited.
// A root that qualifies as a show is cataloged like any other directory;
// a root that does not (including one with an excluded name the user
// pointed at explicitly) is scanned as a container so its loose files
// and nested shows are still found.
func (s *Scanner) walkRoot(ctx context.Context, root string, st *runState, opts Options) error {
	stack := []string{root}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		st.folders++
		s.logger.Debug("scanning", logging.String("dir", dir))

		decision := classify.Evaluate(dir)
		if dir == root && decision != classify.Show {
			decision = classify.Descend
		}
		switch decision {
		case classify.Excluded:
			continue

		case classify.Show:
			id := showID(resolvePath(dir))
			if st.seenIDs[id] {
				continue
			}
			st.seenIDs[id] = true
			row := s.buildRowSafe(ctx, dir, root, st, opts)
			st.rows = append(st.rows, row)
			s.logger.Info("cataloged show",
				logging.String("show_id", row.ShowID),
				logging.String("artist", row.Artist),
				logging.String("folder", row.FolderName))

		case classify.Descend:
			for _, loose := range classify.LooseVideoFiles(dir) {
				id := showID(resolvePath(loose))
				if st.seenIDs[id] {
					continue
				}
				st.seenIDs[id] = true
				st.rows = append(st.rows, s.buildLooseRow(ctx, loose, root, st, opts))
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				s.logger.Warn("cannot list directory",
					logging.String("dir", dir), logging.Error(err))
				continue
			}
			var children []string
			for _, entry := range entries {
				if entry.IsDir() {
					children = append(children, filepath.Join(dir, entry.Name()))
				}
			}
			sort.Strings(children)
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
	return nil
}

// showID derives the stable, content-independent identifier from a path.
func showID(path string) string {
	sum := sha1.Sum([]byte(path))
	return hex.EncodeToString(sum[:])[:12]
}

func resolvePath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// driveInfo returns cached volume metadata for a root. The label is always
// captured; the device identifier only when requested.
func (s *Scanner) driveInfo(root string, st *runState, opts Options) (string, string) {
	resolved := resolvePath(root)
	info, ok := st.volumes[resolved]
	if !ok {
		info = volume.Lookup(root)
		st.volumes[resolved] = info
	}
	if opts.DriveID {
		return info.Label, info.DeviceID
	}
	return info.Label, ""
}

func sortRows(rows []catalog.Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		ai, aj := strings.ToLower(rows[i].Artist), strings.ToLower(rows[j].Artist)
		if ai != aj {
			return ai < aj
		}
		di, dj := rows[i].ShowDate, rows[j].ShowDate
		if di == "" {
			di = "9999-99-99"
		}
		if dj == "" {
			dj = "9999-99-99"
		}
		if di != dj {
			return di < dj
		}
		return strings.ToLower(rows[i].FolderName) < strings.ToLower(rows[j].FolderName)
	})
}

func nowStamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}
