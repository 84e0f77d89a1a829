//go:build unix

package volume

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func deviceIdentifier(resolved string) (string, bool) {
	var st unix.Stat_t
	if err := unix.Stat(resolved, &st); err != nil {
		return "", false
	}
	return fmt.Sprintf("dev-%d", st.Dev), true
}
