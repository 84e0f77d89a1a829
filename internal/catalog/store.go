package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages catalog persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

// rootsSeparator joins the scan roots into a single column. Null byte keeps
// paths containing any printable character unambiguous.
const rootsSeparator = "\x00"

// Open initializes or connects to the catalog database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

func (s *Store) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	ctx = ensureContext(ctx)
	var (
		res     sql.Result
		execErr error
	)
	if err := retryOnBusy(ctx, func() error {
		res, execErr = s.db.ExecContext(ctx, query, args...)
		return execErr
	}); err != nil {
		return nil, err
	}
	return res, nil
}

// Run records one scan batch.
type Run struct {
	ID         int64
	RunID      string
	Roots      []string
	StartedAt  time.Time
	FinishedAt time.Time
	RowCount   int
}

// BeginRun records the start of a scan batch and returns its database ID.
func (s *Store) BeginRun(ctx context.Context, runID string, roots []string) (int64, error) {
	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO scan_runs (run_id, roots, started_at) VALUES (?, ?, ?)`,
		runID,
		strings.Join(roots, rootsSeparator),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert scan run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// FinishRun stamps the run's completion time and final row count.
func (s *Store) FinishRun(ctx context.Context, runDBID int64, rowCount int) error {
	_, err := s.execWithRetry(
		ctx,
		`UPDATE scan_runs SET finished_at = ?, row_count = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano),
		rowCount,
		runDBID,
	)
	if err != nil {
		return fmt.Errorf("finish scan run: %w", err)
	}
	return nil
}

const rowColumns = `show_id, artist, show_date, event_or_festival, venue_name, city, country,
recording_type, generation, lineage, source_equipment,
folder_name, folder_path, master_drive_name, master_drive_id,
rep_video_count, rep_video_files, container, video_codec, width, height, duration_sec,
aspect_ratio, tv_standard, audio_codec, audio_channels, audio_sample_rate,
file_count, total_size_bytes, total_size_human,
checksum_sha1, duplicate_of,
setlist, notes, last_scanned_at, extraction_warnings`

var rowPlaceholders = "?" + strings.Repeat(", ?", 35)

// SaveRows inserts the batch of rows for a run in a single transaction.
func (s *Store) SaveRows(ctx context.Context, runDBID int64, rows []Row) error {
	ctx = ensureContext(ctx)
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rows tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO catalog_rows (scan_run_id, `+rowColumns+`) VALUES (?, `+rowPlaceholders+`)`)
	if err != nil {
		return fmt.Errorf("prepare row insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		args := make([]any, 0, 37)
		args = append(args, runDBID)
		for _, v := range row.Record() {
			args = append(args, v)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert row %s: %w", row.ShowID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rows: %w", err)
	}
	return nil
}

// LatestRun returns the most recently started run, or nil when the catalog
// is empty.
func (s *Store) LatestRun(ctx context.Context) (*Run, error) {
	row := s.db.QueryRowContext(ensureContext(ctx),
		`SELECT id, run_id, roots, started_at, finished_at, row_count
         FROM scan_runs ORDER BY id DESC LIMIT 1`)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest run: %w", err)
	}
	return run, nil
}

func scanRun(row *sql.Row) (*Run, error) {
	var (
		run      Run
		roots    string
		started  string
		finished sql.NullString
	)
	if err := row.Scan(&run.ID, &run.RunID, &roots, &started, &finished, &run.RowCount); err != nil {
		return nil, err
	}
	if roots != "" {
		run.Roots = strings.Split(roots, rootsSeparator)
	}
	if t, err := time.Parse(time.RFC3339Nano, started); err == nil {
		run.StartedAt = t
	}
	if finished.Valid {
		if t, err := time.Parse(time.RFC3339Nano, finished.String); err == nil {
			run.FinishedAt = t
		}
	}
	return &run, nil
}

// RowsForRun returns the rows recorded for a run in insertion order.
func (s *Store) RowsForRun(ctx context.Context, runDBID int64) ([]Row, error) {
	rows, err := s.db.QueryContext(ensureContext(ctx),
		`SELECT `+rowColumns+` FROM catalog_rows WHERE scan_run_id = ? ORDER BY id`, runDBID)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(
			&r.ShowID, &r.Artist, &r.ShowDate, &r.EventOrFestival, &r.VenueName, &r.City, &r.Country,
			&r.RecordingType, &r.Generation, &r.Lineage, &r.SourceEquipment,
			&r.FolderName, &r.FolderPath, &r.MasterDriveName, &r.MasterDriveID,
			&r.RepVideoCount, &r.RepVideoFiles, &r.Container, &r.VideoCodec, &r.Width, &r.Height, &r.DurationSec,
			&r.AspectRatio, &r.TVStandard, &r.AudioCodec, &r.AudioChannels, &r.AudioSampleRate,
			&r.FileCount, &r.TotalSizeBytes, &r.TotalSizeHuman,
			&r.ChecksumSHA1, &r.DuplicateOf,
			&r.Setlist, &r.Notes, &r.LastScannedAt, &r.ExtractionWarnings,
		); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

// LatestRows returns the rows from the most recent run. An empty catalog
// yields an empty slice.
func (s *Store) LatestRows(ctx context.Context) ([]Row, error) {
	run, err := s.LatestRun(ctx)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, nil
	}
	return s.RowsForRun(ctx, run.ID)
}
