package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"showscan/internal/catalog"
	"showscan/internal/classify"
	"showscan/internal/extract"
	"showscan/internal/logging"
	"showscan/internal/media"
	"showscan/internal/notes"
)

const (
	setlistMaxChars = 2000
	lineageMaxChars = 2000
)

func errNoUsableRoots(roots []string) error {
	return fmt.Errorf("no usable scan roots among: %s", strings.Join(roots, ", "))
}

// buildRowSafe contains any failure inside one folder. A panic or error
// degrades to a stub row so siblings keep scanning.
func (s *Scanner) buildRowSafe(ctx context.Context, dir, root string, st *runState, opts Options) (row catalog.Row) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("recovered while scanning folder",
				logging.String("dir", dir), logging.Any("panic", r))
			row = s.stubRow(dir)
		}
	}()
	return s.buildShowRow(ctx, dir, root, st, opts)
}

func (s *Scanner) buildShowRow(ctx context.Context, dir, root string, st *runState, opts Options) catalog.Row {
	folderName := filepath.Base(dir)
	resolved := resolvePath(dir)

	blob, warnings := notes.Collect(ctx, dir, s.Converter)

	showDate := extract.Date(blob)
	setlist := extract.Setlist(blob)

	loc := extract.Location(blob, folderName)
	if loc.Hint != "" {
		warnings = append(warnings, loc.Hint)
	}
	event, venueOverride, eventHint := extract.EventAndVenue(blob, loc.Venue)
	if eventHint != "" {
		warnings = append(warnings, eventHint)
	}
	venue := loc.Venue
	if venueOverride != "" {
		venue = venueOverride
	}
	eventOrFestival := event
	if eventOrFestival == "" {
		eventOrFestival = loc.Festival
	}

	repFiles, container := classify.RepresentativeMedia(dir)
	repRel := make([]string, 0, len(repFiles))
	for _, rf := range repFiles {
		if rel, err := filepath.Rel(dir, rf); err == nil {
			repRel = append(repRel, rel)
		} else {
			repRel = append(repRel, rf)
		}
	}

	info := s.probeRepresentative(ctx, repFiles, container, opts)

	totalBytes, fileCount := totalSizeAndCount(dir)

	lineage := truncateRunes(extract.Lineage(blob), lineageMaxChars)
	sourceEquip := extract.SourceEquipment(lineage)
	recType := extract.RecordingType(blob, folderName)
	generation := extract.Generation(blob, folderName)

	aspect := media.DeriveAspectRatio(info, blob+"\n"+folderName)
	tvStandard := media.DeriveTVStandard(info.FPS)

	driveLabel, driveID := s.driveInfo(root, st, opts)

	row := catalog.Row{
		ShowID:             showID(resolved),
		Artist:             extract.Artist(dir, blob),
		ShowDate:           showDate,
		EventOrFestival:    eventOrFestival,
		VenueName:          venue,
		City:               loc.City,
		Country:            loc.Country,
		RecordingType:      recType,
		Generation:         generation,
		Lineage:            lineage,
		SourceEquipment:    sourceEquip,
		FolderName:         folderName,
		FolderPath:         resolved,
		MasterDriveName:    driveLabel,
		MasterDriveID:      driveID,
		RepVideoCount:      strconv.Itoa(len(repFiles)),
		RepVideoFiles:      strings.Join(repRel, "; "),
		Container:          container,
		VideoCodec:         info.VideoCodec,
		Width:              info.Width,
		Height:             info.Height,
		DurationSec:        info.DurationSec,
		AspectRatio:        aspect,
		TVStandard:         tvStandard,
		AudioCodec:         info.AudioCodec,
		AudioChannels:      info.AudioChannels,
		AudioSampleRate:    info.AudioSampleRate,
		FileCount:          strconv.Itoa(fileCount),
		TotalSizeBytes:     strconv.FormatInt(totalBytes, 10),
		TotalSizeHuman:     catalog.HumanSize(totalBytes),
		Setlist:            truncateRunes(setlist, setlistMaxChars),
		Notes:              truncateRunes(blob, s.cfg.Scan.NotesMaxBytes),
		LastScannedAt:      nowStamp(),
		ExtractionWarnings: strings.Join(warnings, "; "),
	}

	s.applyChecksum(&row, repFiles, st, opts)
	return row
}

// buildLooseRow promotes a stray video file living in a container directory
// to its own one-file show so content is never silently dropped.
func (s *Scanner) buildLooseRow(ctx context.Context, file, root string, st *runState, opts Options) catalog.Row {
	dir := filepath.Dir(file)
	base := filepath.Base(file)
	resolved := resolvePath(file)

	var info media.Info
	if !opts.SkipMedia {
		info = media.Describe(ctx, s.Prober, file, opts.HeaderOnly)
	}

	var totalBytes int64
	fileCount := 0
	if fi, err := os.Stat(file); err == nil {
		totalBytes = fi.Size()
		fileCount = 1
	}

	blob, _ := notes.Collect(ctx, dir, s.Converter)

	driveLabel, driveID := s.driveInfo(root, st, opts)

	row := catalog.Row{
		ShowID:             showID(resolved),
		Artist:             extract.Artist(file, blob),
		ShowDate:           extract.Date(base),
		RecordingType:      extract.RecordingType(blob, base),
		Generation:         extract.Generation(blob, base),
		FolderName:         base,
		FolderPath:         resolved,
		MasterDriveName:    driveLabel,
		MasterDriveID:      driveID,
		RepVideoCount:      "1",
		RepVideoFiles:      base,
		Container:          strings.ToLower(filepath.Ext(base)),
		VideoCodec:         info.VideoCodec,
		Width:              info.Width,
		Height:             info.Height,
		DurationSec:        info.DurationSec,
		AspectRatio:        media.DeriveAspectRatio(info, base),
		TVStandard:         media.DeriveTVStandard(info.FPS),
		AudioCodec:         info.AudioCodec,
		AudioChannels:      info.AudioChannels,
		AudioSampleRate:    info.AudioSampleRate,
		FileCount:          strconv.Itoa(fileCount),
		TotalSizeBytes:     strconv.FormatInt(totalBytes, 10),
		TotalSizeHuman:     catalog.HumanSize(totalBytes),
		LastScannedAt:      nowStamp(),
		ExtractionWarnings: "loose media file promoted to show",
	}

	s.applyChecksum(&row, []string{file}, st, opts)
	return row
}

// stubRow is the minimal record emitted when a folder cannot be processed.
func (s *Scanner) stubRow(dir string) catalog.Row {
	return catalog.Row{
		ShowID:             showID(resolvePath(dir)),
		Artist:             filepath.Base(dir),
		FolderName:         filepath.Base(dir),
		FolderPath:         resolvePath(dir),
		RepVideoCount:      "0",
		FileCount:          "0",
		TotalSizeBytes:     "0",
		TotalSizeHuman:     "0 B",
		LastScannedAt:      nowStamp(),
		ExtractionWarnings: "Unhandled error while scanning this folder",
	}
}

// probeRepresentative describes the representative media set. Multi-segment
// disc groups are probed per segment and merged; everything else probes the
// first file only.
func (s *Scanner) probeRepresentative(ctx context.Context, repFiles []string, container string, opts Options) media.Info {
	if opts.SkipMedia || len(repFiles) == 0 {
		return media.Info{}
	}
	if container == ".vob" && len(repFiles) > 1 {
		segments := make([]media.Info, 0, len(repFiles))
		for _, seg := range repFiles {
			segments = append(segments, media.Describe(ctx, s.Prober, seg, opts.HeaderOnly))
		}
		return media.MergeSegments(segments)
	}
	return media.Describe(ctx, s.Prober, repFiles[0], opts.HeaderOnly)
}

// applyChecksum fills ChecksumSHA1 and links duplicates. The first row to
// produce a checksum is canonical; later rows reference its identifier.
func (s *Scanner) applyChecksum(row *catalog.Row, repFiles []string, st *runState, opts Options) {
	if !opts.Checksums || len(repFiles) == 0 {
		return
	}
	sum := checksumFiles(repFiles)
	row.ChecksumSHA1 = sum
	if sum == "" {
		return
	}
	if canonical, ok := st.checksumToShowID[sum]; ok {
		row.DuplicateOf = canonical
	} else {
		st.checksumToShowID[sum] = row.ShowID
	}
}

// totalSizeAndCount aggregates every regular file under dir recursively.
// Unreadable entries are skipped.
func totalSizeAndCount(dir string) (int64, int) {
	var total int64
	count := 0
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if fi, err := d.Info(); err == nil && fi.Mode().IsRegular() {
			total += fi.Size()
			count++
		}
		return nil
	})
	return total, count
}

// truncateRunes caps s at limit characters without splitting a rune.
func truncateRunes(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
