// Package media turns raw ffprobe output into the technical parameters a
// catalog row records: codec, dimensions, duration, frame rate, aspect ratio
// classification, and TV standard. It also defines the Prober port so the
// scanner can run against canned results in tests.
package media
