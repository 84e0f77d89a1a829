package config

const (
	defaultCatalogDir          = "~/.local/share/showscan"
	defaultLogDir              = "~/.local/share/showscan/logs"
	defaultNotesMaxBytes       = 8000
	defaultFFprobeBinary       = "ffprobe"
	defaultProbeTimeoutSeconds = 60
	defaultNotesTimeoutSeconds = 30
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CatalogDir: defaultCatalogDir,
			LogDir:     defaultLogDir,
		},
		Scan: Scan{
			NotesMaxBytes: defaultNotesMaxBytes,
		},
		Probe: Probe{
			FFprobeBinary:  defaultFFprobeBinary,
			TimeoutSeconds: defaultProbeTimeoutSeconds,
		},
		Notes: Notes{
			TimeoutSeconds: defaultNotesTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
