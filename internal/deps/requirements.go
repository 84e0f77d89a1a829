package deps

import "showscan/internal/config"

// ForConfig builds the external tool requirements for a configuration.
func ForConfig(cfg *config.Config) []Requirement {
	return []Requirement{
		{
			Name:        "ffprobe",
			Command:     cfg.Probe.FFprobeBinary,
			Description: "Media stream probing",
		},
		{
			Name:        "Document converter",
			Command:     cfg.Notes.ConverterBinary,
			Description: "Plain-text extraction from .doc/.rtf notes",
			Optional:    true,
		},
	}
}
