//go:build !unix

package volume

func deviceIdentifier(_ string) (string, bool) {
	return "", false
}
