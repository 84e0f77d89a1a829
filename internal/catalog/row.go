package catalog

import "fmt"

// Row is one cataloged show. Every field is a string: values flow from
// regex extraction and subprocess output, and the CSV surface has no
// numeric typing. Empty string means "unknown".
type Row struct {
	ShowID             string
	Artist             string
	ShowDate           string
	EventOrFestival    string
	VenueName          string
	City               string
	Country            string
	RecordingType      string
	Generation         string
	Lineage            string
	SourceEquipment    string
	FolderName         string
	FolderPath         string
	MasterDriveName    string
	MasterDriveID      string
	RepVideoCount      string
	RepVideoFiles      string
	Container          string
	VideoCodec         string
	Width              string
	Height             string
	DurationSec        string
	AspectRatio        string
	TVStandard         string
	AudioCodec         string
	AudioChannels      string
	AudioSampleRate    string
	FileCount          string
	TotalSizeBytes     string
	TotalSizeHuman     string
	ChecksumSHA1       string
	DuplicateOf        string
	Setlist            string
	Notes              string
	LastScannedAt      string
	ExtractionWarnings string
}

// columns is the canonical CSV header order. Do not reorder: existing
// exports and downstream tooling depend on it.
var columns = []string{
	"ShowID", "Artist", "ShowDate", "EventOrFestival", "VenueName", "City", "Country",
	"RecordingType", "Generation", "Lineage", "SourceEquipment",
	"FolderName", "FolderPath", "MasterDriveName", "MasterDriveID",
	"RepVideoCount", "RepVideoFiles", "Container", "VideoCodec", "Width", "Height", "DurationSec",
	"AspectRatio", "TVStandard", "AudioCodec", "AudioChannels", "AudioSampleRate",
	"FileCount", "TotalSizeBytes", "TotalSizeHuman",
	"ChecksumSHA1", "DuplicateOf",
	"Setlist", "Notes", "LastScannedAt", "ExtractionWarnings",
}

// Columns returns the CSV header in canonical order.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// Record returns the row's values aligned with Columns().
func (r Row) Record() []string {
	return []string{
		r.ShowID, r.Artist, r.ShowDate, r.EventOrFestival, r.VenueName, r.City, r.Country,
		r.RecordingType, r.Generation, r.Lineage, r.SourceEquipment,
		r.FolderName, r.FolderPath, r.MasterDriveName, r.MasterDriveID,
		r.RepVideoCount, r.RepVideoFiles, r.Container, r.VideoCodec, r.Width, r.Height, r.DurationSec,
		r.AspectRatio, r.TVStandard, r.AudioCodec, r.AudioChannels, r.AudioSampleRate,
		r.FileCount, r.TotalSizeBytes, r.TotalSizeHuman,
		r.ChecksumSHA1, r.DuplicateOf,
		r.Setlist, r.Notes, r.LastScannedAt, r.ExtractionWarnings,
	}
}

// HumanSize renders a byte count with two decimals and 1024-based units.
// The format is part of the catalog surface; keep it stable.
func HumanSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	s := float64(bytes)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB", "PB"} {
		if s < 1024 {
			return fmt.Sprintf("%.2f %s", s, unit)
		}
		s /= 1024
	}
	return fmt.Sprintf("%.2f EB", s)
}
