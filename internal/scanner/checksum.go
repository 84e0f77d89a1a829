package scanner

import (
	"crypto/sha1"
	"encoding/hex"
	"io"
	"os"
)

// checksumFiles streams every file in order through one SHA-1 digest, so the
// same ordered set always yields the same checksum regardless of filesystem
// metadata. Any read failure yields an empty checksum, never a partial one.
func checksumFiles(paths []string) string {
	h := sha1.New()
	buf := make([]byte, 1024*1024)
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return ""
		}
		_, err = io.CopyBuffer(h, f, buf)
		f.Close()
		if err != nil {
			return ""
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
