// Package volume resolves the human-readable label and a stable identifier
// for the volume backing a scan root. Labels follow platform conventions
// (the /Volumes mount name on darwin, the root's base name elsewhere);
// identifiers prefer the device number and fall back to a hash of the
// resolved path so rows stay linkable even on exotic filesystems.
package volume

import (
	"crypto/sha1"
	"encoding/hex"
	"path/filepath"
	"runtime"
	"strings"
)

// Info describes the volume behind a scan root.
type Info struct {
	Label    string
	DeviceID string
}

// Lookup resolves volume metadata for root. It never fails: unresolvable
// fields degrade to a path-derived label and hash identifier.
func Lookup(root string) Info {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		resolved = root
	}
	resolved = filepath.Clean(resolved)

	info := Info{Label: labelFor(resolved)}
	if id, ok := deviceIdentifier(resolved); ok {
		info.DeviceID = id
	} else {
		info.DeviceID = pathIdentifier(resolved)
	}
	return info
}

func labelFor(resolved string) string {
	if runtime.GOOS == "darwin" {
		parts := strings.Split(resolved, string(filepath.Separator))
		// ["", "Volumes", "<label>", ...]
		if len(parts) >= 3 && parts[1] == "Volumes" && parts[2] != "" {
			return parts[2]
		}
	}
	if base := filepath.Base(resolved); base != "" && base != string(filepath.Separator) && base != "." {
		return base
	}
	return resolved
}

func pathIdentifier(resolved string) string {
	sum := sha1.Sum([]byte(resolved))
	return hex.EncodeToString(sum[:])[:12]
}
