// Package ffprobe wraps the external ffprobe binary used to inspect media
// files. Callers receive a decoded JSON model plus helpers for the handful of
// fields the cataloger cares about; failures surface as errors at this
// boundary and are downgraded to empty probe results by the media package.
package ffprobe
